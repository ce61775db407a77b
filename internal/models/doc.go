// Package models defines the plain value types exchanged between the
// repositories, services and the CLI: users, students, professors, courses,
// credentials and the patches used for partial updates.
package models
