// Package domain holds the error taxonomy shared by every layer. Entities and
// their business rules live in sub-packages (domain/employee, domain/timesheet,
// domain/ledger); none of them import anything that performs I/O.
package domain
