// Package agent defines the conversational agents and the router that hands
// the conversation between them. The greeter owns language selection and
// intent routing; one form agent exists per supported government form, with
// its tool set generated from the form's field declarations.
package agent
