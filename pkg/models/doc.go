// Package models provides shared data models and types for secforge.
//
// This package contains the generation input ([Configuration]), the emitted
// artifact ([File]) and the generation output ([Project]), together with the
// closed enumerations they reference.
//
// # Enumerations
//
// Each enumeration is a string type with an IsValid method and a function
// returning all valid values in canonical order:
//   - [TechStack]: go, nodejs, python, java, dotnet
//   - [DeploymentPlatform]: kubernetes, aws, gcp, azure, docker
//   - [CICDPlatform]: github, gitlab, jenkins, azure-devops
//   - [SecurityFeature]: sast, dast, dependency-scan, secrets-scan, container-scan, iac-scan
//   - [Mode]: quick, wizard, custom
//
//	stack := models.StackGo
//	if stack.IsValid() {
//	    fmt.Println("Valid stack:", stack.Label())
//	}
//
// # Projects
//
// A [Project] is a value object created once per generation call. Its tag
// slices are the configuration's slices passed through unchanged, and its
// Files sequence keeps insertion order, including duplicate paths:
//
//	f, ok := project.Lookup("Dockerfile") // last entry with that path wins
package models
