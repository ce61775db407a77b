// Package entity provides the generic keyed repository used for students,
// professors and courses, and the codecs describing each record layout.
//
// # Data Model
//
// A store is a header row followed by data rows; column 0 is the key and is
// unique across rows. Optional fields are empty cells.
//
// # Semantics
//
//   - List returns data rows in file order.
//   - Insert scans for the key and appends only when it is absent.
//   - Update and Delete load every row, change them in memory and atomically
//     rewrite the store; an absent key fails before anything is written.
//
// Every operation is a full scan. That is intended for the single-process,
// single-writer deployment this package targets.
//
// Typical Usage
//
//	store := csvfile.New(paths.Courses, entity.CourseCodec{}.Header())
//	courses := entity.NewRepository[models.Course](store, entity.CourseCodec{}, log)
//	_ = courses.Insert(ctx, models.Course{ID: "C101", Name: "Data 101", Credits: 4})
//	_ = courses.Update(ctx, "C101", models.CoursePatch{Description: "intro"})
//	_ = courses.Delete(ctx, "C101")
package entity
