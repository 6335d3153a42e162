package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	StudentRepository      *StudentRepository
	RegistrationRepository *RegistrationRepository
	AdminRepository        *AdminRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		StudentRepository:      NewStudentRepository(db),
		RegistrationRepository: NewRegistrationRepository(db),
		AdminRepository:        NewAdminRepository(db),
	}
}
