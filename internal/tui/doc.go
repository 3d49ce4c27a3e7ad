// Package tui implements the terminal user interface of the resumekit
// client.
//
// The interface runs in two phases. The authentication flow is a small page
// router ([RootModel]) over menu, login, register, and password-reset
// screens. Once an account is signed in, the resume wizard takes over: a
// step-by-step editor walking through personal details, education,
// experience, skills, projects, and template choice, ending in a preview
// from which the resume can be downloaded or the account upgraded.
package tui
