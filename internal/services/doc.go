// Package services contains the application services the CLI talks to.
//
//   - AuthService: the credential store (register, verify, rotate).
//   - StudentService, ProfessorService: entity CRUD plus the compound insert
//     that also registers a credential for the new user.
//   - CourseService: course CRUD.
//
// Services take and return plain values from internal/models; storage stays
// behind the repositories.
package services
