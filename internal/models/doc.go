// Package models defines the core domain models for the tutoring back office.
//
// # Entities
//
//   - Student: a learner with a grade label and per-course hour balances
//   - Teacher: a tutor with a default hourly rate and a grade-rate matrix
//   - Course: a named offering with a fallback base rate and an optional teacher
//   - Session: a taught slot that consumes hours from a student's balance
//   - Payment: a purchase of hours that credits a student's balance
//   - Expense: any other running cost of the center
//   - Staff: a back-office account allowed to use the API
//
// # Ledger containers
//
// Hour balances and grade rates are dynamic key sets stored as JSON columns.
// They are exposed as Balances and GradeRates, keyed containers whose methods
// are the only way the rest of the code reads or changes them:
//
//   - Balances.Apply floors every balance at zero
//   - GradeRates.Lookup reports whether a grade has its own rate
//
// # Design Principles
//
// 1. **Facts over caches**: sessions and payments are stored facts; salary cost and
// report figures are recomputed from them on every read.
// 2. **IDs, not pointers**: relationships use ID strings.
// 3. **Portable columns**: dates are TEXT "YYYY-MM-DD" and maps are JSON text so the
// same schema runs on SQLite and Postgres.
package models
