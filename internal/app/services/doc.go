// Package services holds the business logic behind the HTTP surface:
// AccessService decides logins and gates visibility, RosterService imports
// students from spreadsheets, RecordService inserts grades, absences and
// notifications. Persistence is abstracted behind small store interfaces so
// the decision logic is testable without a database.
package services
