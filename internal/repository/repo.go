// Package repository holds the SQL data access layer. Every multi-statement
// write runs inside a single transaction with rollback on any failure, so no
// partial order, reservation, or settlement is ever observable.
package repository

import (
	"database/sql"
	"errors"
	"strings"
)

type Repository struct {
	Menu          MenuRepositoryInterface
	Orders        OrderRepositoryInterface
	Transactions  TransactionRepositoryInterface
	Notifications NotificationRepositoryInterface
}

func New(db *sql.DB) *Repository {
	return &Repository{
		Menu:          NewMenuRepository(db),
		Orders:        NewOrderRepository(db),
		Transactions:  NewTransactionRepository(db),
		Notifications: NewNotificationRepository(db),
	}
}

// IsUniqueViolation reports whether err came from a UNIQUE constraint, such as
// a generated order or transaction code colliding with an existing row.
func IsUniqueViolation(err error) bool {
	for e := err; e != nil; e = errors.Unwrap(e) {
		if strings.Contains(e.Error(), "UNIQUE constraint failed") {
			return true
		}
	}
	return false
}
