package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kdanquah/regportal/internal/app/models"
	"github.com/kdanquah/regportal/internal/db"
	"github.com/kdanquah/regportal/internal/pkg/apperrors"
)

// registrationSortColumns maps logical sort keys to physical columns.
var registrationSortColumns = map[string]string{
	"registration_id": "registration_id",
	"programme":       "programme",
	"date_registered": "date_registered",
}

const registrationColumns = `registration_id, student_id, index_number, programme, specialization,
		level, session, academic_year, semester, courses, total_credits,
		date_registered, approval_status, receipt_path, receipt_amount`

// RegistrationRepository handles database operations for course registrations
type RegistrationRepository struct {
	db *pgxpool.Pool
}

// NewRegistrationRepository creates a new registration repository
func NewRegistrationRepository(db *pgxpool.Pool) *RegistrationRepository {
	return &RegistrationRepository{
		db: db,
	}
}

func scanRegistration(row pgx.Row) (*models.CourseRegistration, error) {
	var reg models.CourseRegistration
	var coursesJSON []byte

	err := row.Scan(
		&reg.RegistrationID,
		&reg.StudentID,
		&reg.IndexNumber,
		&reg.Programme,
		&reg.Specialization,
		&reg.Level,
		&reg.Session,
		&reg.AcademicYear,
		&reg.Semester,
		&coursesJSON,
		&reg.TotalCredits,
		&reg.DateRegistered,
		&reg.ApprovalStatus,
		&reg.ReceiptPath,
		&reg.ReceiptAmount,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(coursesJSON, &reg.Courses); err != nil {
		return nil, fmt.Errorf("error decoding course snapshot: %w", err)
	}

	return &reg, nil
}

// Create inserts a new registration and fills in the generated id, the
// registration date and the default approval status.
func (r *RegistrationRepository) Create(ctx context.Context, reg *models.CourseRegistration) error {
	coursesJSON, err := json.Marshal(reg.Courses)
	if err != nil {
		return fmt.Errorf("error encoding course snapshot: %w", err)
	}

	query := `
		INSERT INTO course_registrations (
			student_id, index_number, programme, specialization, level,
			session, academic_year, semester, courses, total_credits, receipt_amount
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING registration_id, date_registered, approval_status
	`

	err = r.db.QueryRow(ctx, query,
		reg.StudentID, reg.IndexNumber, reg.Programme, reg.Specialization, reg.Level,
		reg.Session, reg.AcademicYear, reg.Semester, coursesJSON, reg.TotalCredits, reg.ReceiptAmount,
	).Scan(&reg.RegistrationID, &reg.DateRegistered, &reg.ApprovalStatus)

	if err != nil {
		return fmt.Errorf("error creating course registration: %w", err)
	}

	return nil
}

// GetByID retrieves a registration by its id
func (r *RegistrationRepository) GetByID(ctx context.Context, registrationID int64) (*models.CourseRegistration, error) {
	query := `SELECT ` + registrationColumns + ` FROM course_registrations WHERE registration_id = $1`

	reg, err := scanRegistration(r.db.QueryRow(ctx, query, registrationID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrRegistrationNotFound
		}
		return nil, fmt.Errorf("error retrieving course registration: %w", err)
	}

	return reg, nil
}

// GetByStudentID retrieves all registrations referencing a student.
func (r *RegistrationRepository) GetByStudentID(ctx context.Context, studentID string) ([]*models.CourseRegistration, error) {
	query := `SELECT ` + registrationColumns + `
		FROM course_registrations WHERE student_id = $1 ORDER BY registration_id`

	rows, err := r.db.Query(ctx, query, studentID)
	if err != nil {
		return nil, fmt.Errorf("error listing registrations for student: %w", err)
	}
	defer rows.Close()

	var regs []*models.CourseRegistration
	for rows.Next() {
		reg, err := scanRegistration(rows)
		if err != nil {
			return nil, err
		}
		regs = append(regs, reg)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return regs, nil
}

// Update rewrites the mutable fields of an existing registration, including
// the course snapshot and its credit total.
func (r *RegistrationRepository) Update(ctx context.Context, reg *models.CourseRegistration) error {
	coursesJSON, err := json.Marshal(reg.Courses)
	if err != nil {
		return fmt.Errorf("error encoding course snapshot: %w", err)
	}

	query := `
		UPDATE course_registrations SET
			index_number = $2, programme = $3, specialization = $4, level = $5,
			session = $6, academic_year = $7, semester = $8,
			courses = $9, total_credits = $10
		WHERE registration_id = $1
	`

	cmdTag, err := r.db.Exec(ctx, query,
		reg.RegistrationID,
		reg.IndexNumber, reg.Programme, reg.Specialization, reg.Level,
		reg.Session, reg.AcademicYear, reg.Semester,
		coursesJSON, reg.TotalCredits,
	)
	if err != nil {
		return fmt.Errorf("error updating course registration: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrRegistrationNotFound
	}

	return nil
}

// DeleteTx removes a registration row inside the caller's transaction.
func (r *RegistrationRepository) DeleteTx(ctx context.Context, tx pgx.Tx, registrationID int64) error {
	cmdTag, err := tx.Exec(ctx,
		`DELETE FROM course_registrations WHERE registration_id = $1`, registrationID)
	if err != nil {
		return fmt.Errorf("error deleting course registration: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrRegistrationNotFound
	}

	return nil
}

// DeleteWithCleanup removes a registration row and runs the attachment
// cleanup inside one transaction; a cleanup failure rolls the delete back.
func (r *RegistrationRepository) DeleteWithCleanup(ctx context.Context, registrationID int64, cleanup func() error) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		if err := r.DeleteTx(ctx, tx, registrationID); err != nil {
			return err
		}
		if cleanup != nil {
			if err := cleanup(); err != nil {
				return err
			}
		}
		return nil
	})
}

// List retrieves registrations matching the filter.
func (r *RegistrationRepository) List(ctx context.Context, filter ListFilter) ([]*models.CourseRegistration, error) {
	query := `SELECT ` + registrationColumns + ` FROM course_registrations WHERE 1=1`
	args := []interface{}{}

	if filter.Status != "" && filter.Status != "all" {
		args = append(args, filter.Status)
		query += fmt.Sprintf(" AND approval_status = $%d", len(args))
	}

	if filter.Search != "" {
		args = append(args, likePattern(filter.Search))
		n := len(args)
		query += fmt.Sprintf(
			" AND (student_id ILIKE $%d OR programme ILIKE $%d OR index_number ILIKE $%d)",
			n, n, n)
	}

	query += orderClause(registrationSortColumns, filter.SortKey, "registration_id", filter.SortDesc)

	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
		args = append(args, filter.Offset)
		query += fmt.Sprintf(" OFFSET $%d", len(args))
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing course registrations: %w", err)
	}
	defer rows.Close()

	var regs []*models.CourseRegistration
	for rows.Next() {
		reg, err := scanRegistration(rows)
		if err != nil {
			return nil, err
		}
		regs = append(regs, reg)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return regs, nil
}

// Count returns the number of registrations matching the filter.
func (r *RegistrationRepository) Count(ctx context.Context, filter ListFilter) (int64, error) {
	query := `SELECT COUNT(*) FROM course_registrations WHERE 1=1`
	args := []interface{}{}

	if filter.Status != "" && filter.Status != "all" {
		args = append(args, filter.Status)
		query += fmt.Sprintf(" AND approval_status = $%d", len(args))
	}

	if filter.Search != "" {
		args = append(args, likePattern(filter.Search))
		n := len(args)
		query += fmt.Sprintf(
			" AND (student_id ILIKE $%d OR programme ILIKE $%d OR index_number ILIKE $%d)",
			n, n, n)
	}

	var count int64
	if err := r.db.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting course registrations: %w", err)
	}
	return count, nil
}

// SetApprovalStatus updates the review outcome of a registration.
func (r *RegistrationRepository) SetApprovalStatus(ctx context.Context, registrationID int64, status models.ApprovalStatus) error {
	cmdTag, err := r.db.Exec(ctx,
		`UPDATE course_registrations SET approval_status = $2 WHERE registration_id = $1`,
		registrationID, status)
	if err != nil {
		return fmt.Errorf("error updating approval status: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrRegistrationNotFound
	}

	return nil
}

// SetAttachmentPath stores (or clears, with nil) the receipt path, the only
// slot a registration supports.
func (r *RegistrationRepository) SetAttachmentPath(ctx context.Context, registrationID int64, slot models.AttachmentSlot, path *string) error {
	if slot != models.SlotReceipt {
		return apperrors.ErrUnknownSlot
	}

	query := `UPDATE course_registrations SET receipt_path = $2 WHERE registration_id = $1`
	if path == nil {
		query = `UPDATE course_registrations SET receipt_path = $2, receipt_amount = 0 WHERE registration_id = $1`
	}

	cmdTag, err := r.db.Exec(ctx, query, registrationID, path)
	if err != nil {
		return fmt.Errorf("error updating attachment path: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrRegistrationNotFound
	}

	return nil
}

// SetReceiptAmount records the amount tied to the receipt slot.
func (r *RegistrationRepository) SetReceiptAmount(ctx context.Context, registrationID int64, amount float64) error {
	cmdTag, err := r.db.Exec(ctx,
		`UPDATE course_registrations SET receipt_amount = $2 WHERE registration_id = $1`,
		registrationID, amount)
	if err != nil {
		return fmt.Errorf("error updating receipt amount: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrRegistrationNotFound
	}

	return nil
}

// CountByStatus returns the number of registrations with the given status.
func (r *RegistrationRepository) CountByStatus(ctx context.Context, status models.ApprovalStatus) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM course_registrations WHERE approval_status = $1`,
		status).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting course registrations: %w", err)
	}
	return count, nil
}
