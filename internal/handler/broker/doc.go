// Package broker binds the save.msg and receive.msg NATS subjects to the
// secret message service.
//
// Every request is answered on its reply subject with either a JSON success
// body or a JSON {"error": "..."} object. Requests without a reply subject
// are logged and dropped.
package broker
