// Package cli is responsible for parsing command-line arguments, collecting
// equations from the terminal or an HCL file, and printing the solver report.
// It translates flags into config.Config and errors into exit codes.
package cli
