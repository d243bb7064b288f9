// Package greeting produces greetings.
//
// Every greeting returned by this package begins with "Hello".
package greeting
