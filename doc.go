// Package project is the starting point for new Go projects cut from this
// template.
//
// The package exposes a single function, Hello, which returns a fixed
// greeting. Replace it with real functionality when starting a project.
//
// # Usage
//
//	import project "github.com/engineeringclouds/template-go-project"
//
//	fmt.Println(project.Hello())
//
// Hello is pure and stateless, so it is safe for concurrent use.
package project
