// Package circumstance tracks the special circumstance the process was started
// in, such as being asked to share text or a file as a new Send.
package circumstance
