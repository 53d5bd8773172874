package project

const greeting = "Hello, world!"

// Hello returns the greeting. It never fails and returns the same value on
// every call.
func Hello() string {
	return greeting
}
