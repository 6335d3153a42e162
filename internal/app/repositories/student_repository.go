package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kdanquah/regportal/internal/app/models"
	"github.com/kdanquah/regportal/internal/db"
	"github.com/kdanquah/regportal/internal/pkg/apperrors"
	"github.com/kdanquah/regportal/internal/pkg/dberrors"
)

// studentSortColumns maps the logical sort keys the admin screens offer to
// physical columns.
var studentSortColumns = map[string]string{
	"student_id": "student_id",
	"surname":    "surname",
	"created_at": "created_at",
}

// studentSlotColumns maps attachment slots to their path columns.
var studentSlotColumns = map[models.AttachmentSlot]string{
	models.SlotGhanaCard:     "ghana_card_path",
	models.SlotPassportPhoto: "passport_photo_path",
	models.SlotTranscript:    "transcript_path",
	models.SlotCertificate:   "certificate_path",
	models.SlotReceipt:       "receipt_path",
}

const studentColumns = `student_id, surname, other_names, date_of_birth, place_of_birth,
		home_town, residential_address, postal_address, email, telephone, national_id,
		nationality, marital_status, gender, religion, denomination,
		disability_status, disability_description,
		guardian_name, guardian_relationship, guardian_occupation, guardian_address, guardian_telephone,
		previous_school, qualification_type, completion_year, aggregate_score,
		ghana_card_path, passport_photo_path, transcript_path, certificate_path, receipt_path,
		receipt_amount, programme, approval_status, created_at`

// StudentRepository handles database operations for student intake records
type StudentRepository struct {
	db *pgxpool.Pool
}

// NewStudentRepository creates a new student repository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{
		db: db,
	}
}

func scanStudent(row pgx.Row) (*models.StudentRecord, error) {
	var rec models.StudentRecord
	err := row.Scan(
		&rec.StudentID,
		&rec.Surname,
		&rec.OtherNames,
		&rec.DateOfBirth,
		&rec.PlaceOfBirth,
		&rec.HomeTown,
		&rec.ResidentialAddress,
		&rec.PostalAddress,
		&rec.Email,
		&rec.Telephone,
		&rec.NationalID,
		&rec.Nationality,
		&rec.MaritalStatus,
		&rec.Gender,
		&rec.Religion,
		&rec.Denomination,
		&rec.DisabilityStatus,
		&rec.DisabilityDescription,
		&rec.GuardianName,
		&rec.GuardianRelationship,
		&rec.GuardianOccupation,
		&rec.GuardianAddress,
		&rec.GuardianTelephone,
		&rec.PreviousSchool,
		&rec.QualificationType,
		&rec.CompletionYear,
		&rec.AggregateScore,
		&rec.GhanaCardPath,
		&rec.PassportPhotoPath,
		&rec.TranscriptPath,
		&rec.CertificatePath,
		&rec.ReceiptPath,
		&rec.ReceiptAmount,
		&rec.Programme,
		&rec.ApprovalStatus,
		&rec.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// Create inserts a new student record with approval_status=pending and
// created_at set by the database. A duplicate id fails without touching the
// existing row.
func (r *StudentRepository) Create(ctx context.Context, rec *models.StudentRecord) error {
	query := `
		INSERT INTO student_records (
			student_id, surname, other_names, date_of_birth, place_of_birth,
			home_town, residential_address, postal_address, email, telephone, national_id,
			nationality, marital_status, gender, religion, denomination,
			disability_status, disability_description,
			guardian_name, guardian_relationship, guardian_occupation, guardian_address, guardian_telephone,
			previous_school, qualification_type, completion_year, aggregate_score,
			receipt_amount, programme
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15,
			$16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27, $28, $29)
		RETURNING approval_status, created_at
	`

	err := r.db.QueryRow(ctx, query,
		rec.StudentID, rec.Surname, rec.OtherNames, rec.DateOfBirth, rec.PlaceOfBirth,
		rec.HomeTown, rec.ResidentialAddress, rec.PostalAddress, rec.Email, rec.Telephone, rec.NationalID,
		rec.Nationality, rec.MaritalStatus, rec.Gender, rec.Religion, rec.Denomination,
		rec.DisabilityStatus, rec.DisabilityDescription,
		rec.GuardianName, rec.GuardianRelationship, rec.GuardianOccupation, rec.GuardianAddress, rec.GuardianTelephone,
		rec.PreviousSchool, rec.QualificationType, rec.CompletionYear, rec.AggregateScore,
		rec.ReceiptAmount, rec.Programme,
	).Scan(&rec.ApprovalStatus, &rec.CreatedAt)

	if err != nil {
		if dberrors.IsDuplicateKeyError(err) {
			return apperrors.ErrStudentIDAlreadyExists
		}
		return fmt.Errorf("error creating student record: %w", err)
	}

	return nil
}

// GetByID retrieves a student record by its id
func (r *StudentRepository) GetByID(ctx context.Context, studentID string) (*models.StudentRecord, error) {
	query := `SELECT ` + studentColumns + ` FROM student_records WHERE student_id = $1`

	rec, err := scanStudent(r.db.QueryRow(ctx, query, studentID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student record: %w", err)
	}

	return rec, nil
}

// Exists reports whether a student record with the given id is present.
func (r *StudentRepository) Exists(ctx context.Context, studentID string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM student_records WHERE student_id = $1)`,
		studentID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking student existence: %w", err)
	}
	return exists, nil
}

// Update rewrites the mutable fields of an existing record. The student id is
// the key, never a value.
func (r *StudentRepository) Update(ctx context.Context, rec *models.StudentRecord) error {
	query := `
		UPDATE student_records SET
			surname = $2, other_names = $3, date_of_birth = $4, place_of_birth = $5,
			home_town = $6, residential_address = $7, postal_address = $8, email = $9,
			telephone = $10, national_id = $11, nationality = $12, marital_status = $13,
			gender = $14, religion = $15, denomination = $16,
			disability_status = $17, disability_description = $18,
			guardian_name = $19, guardian_relationship = $20, guardian_occupation = $21,
			guardian_address = $22, guardian_telephone = $23,
			previous_school = $24, qualification_type = $25, completion_year = $26, aggregate_score = $27,
			programme = $28
		WHERE student_id = $1
	`

	cmdTag, err := r.db.Exec(ctx, query,
		rec.StudentID,
		rec.Surname, rec.OtherNames, rec.DateOfBirth, rec.PlaceOfBirth,
		rec.HomeTown, rec.ResidentialAddress, rec.PostalAddress, rec.Email,
		rec.Telephone, rec.NationalID, rec.Nationality, rec.MaritalStatus,
		rec.Gender, rec.Religion, rec.Denomination,
		rec.DisabilityStatus, rec.DisabilityDescription,
		rec.GuardianName, rec.GuardianRelationship, rec.GuardianOccupation,
		rec.GuardianAddress, rec.GuardianTelephone,
		rec.PreviousSchool, rec.QualificationType, rec.CompletionYear, rec.AggregateScore,
		rec.Programme,
	)
	if err != nil {
		return fmt.Errorf("error updating student record: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	return nil
}

// DeleteTx removes a student row inside the caller's transaction, so the row
// delete and the attachment file removal commit or roll back together.
func (r *StudentRepository) DeleteTx(ctx context.Context, tx pgx.Tx, studentID string) error {
	cmdTag, err := tx.Exec(ctx, `DELETE FROM student_records WHERE student_id = $1`, studentID)
	if err != nil {
		return fmt.Errorf("error deleting student record: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	return nil
}

// DeleteWithCleanup removes a student row and runs the attachment cleanup
// inside one transaction. If cleanup fails the row delete rolls back, so a
// row never silently outlives its files or vice versa.
func (r *StudentRepository) DeleteWithCleanup(ctx context.Context, studentID string, cleanup func() error) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		if err := r.DeleteTx(ctx, tx, studentID); err != nil {
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

// List retrieves student records matching the filter.
func (r *StudentRepository) List(ctx context.Context, filter ListFilter) ([]*models.StudentRecord, error) {
	query := `SELECT ` + studentColumns + ` FROM student_records WHERE 1=1`
	args := []interface{}{}

	if filter.Status != "" && filter.Status != "all" {
		args = append(args, filter.Status)
		query += fmt.Sprintf(" AND approval_status = $%d", len(args))
	}

	if filter.Search != "" {
		args = append(args, likePattern(filter.Search))
		n := len(args)
		query += fmt.Sprintf(
			" AND (student_id ILIKE $%d OR surname ILIKE $%d OR other_names ILIKE $%d OR email ILIKE $%d)",
			n, n, n, n)
	}

	query += orderClause(studentSortColumns, filter.SortKey, "created_at", filter.SortDesc)

	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
		args = append(args, filter.Offset)
		query += fmt.Sprintf(" OFFSET $%d", len(args))
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing student records: %w", err)
	}
	defer rows.Close()

	var records []*models.StudentRecord
	for rows.Next() {
		rec, err := scanStudent(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

// Count returns the number of records matching the filter, ignoring paging.
func (r *StudentRepository) Count(ctx context.Context, filter ListFilter) (int64, error) {
	query := `SELECT COUNT(*) FROM student_records WHERE 1=1`
	args := []interface{}{}

	if filter.Status != "" && filter.Status != "all" {
		args = append(args, filter.Status)
		query += fmt.Sprintf(" AND approval_status = $%d", len(args))
	}

	if filter.Search != "" {
		args = append(args, likePattern(filter.Search))
		n := len(args)
		query += fmt.Sprintf(
			" AND (student_id ILIKE $%d OR surname ILIKE $%d OR other_names ILIKE $%d OR email ILIKE $%d)",
			n, n, n, n)
	}

	var count int64
	if err := r.db.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting student records: %w", err)
	}
	return count, nil
}

// SetApprovalStatus updates the review outcome of a record. Last write wins.
func (r *StudentRepository) SetApprovalStatus(ctx context.Context, studentID string, status models.ApprovalStatus) error {
	cmdTag, err := r.db.Exec(ctx,
		`UPDATE student_records SET approval_status = $2 WHERE student_id = $1`,
		studentID, status)
	if err != nil {
		return fmt.Errorf("error updating approval status: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	return nil
}

// SetAttachmentPath stores (or clears, with nil) the path behind a slot.
func (r *StudentRepository) SetAttachmentPath(ctx context.Context, studentID string, slot models.AttachmentSlot, path *string) error {
	column, ok := studentSlotColumns[slot]
	if !ok {
		return apperrors.ErrUnknownSlot
	}

	// Detaching a receipt also zeroes the stored amount.
	query := fmt.Sprintf(`UPDATE student_records SET %s = $2 WHERE student_id = $1`, column)
	if slot == models.SlotReceipt && path == nil {
		query = `UPDATE student_records SET receipt_path = $2, receipt_amount = 0 WHERE student_id = $1`
	}

	cmdTag, err := r.db.Exec(ctx, query, studentID, path)
	if err != nil {
		return fmt.Errorf("error updating attachment path: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	return nil
}

// SetReceiptAmount records the amount tied to the receipt slot.
func (r *StudentRepository) SetReceiptAmount(ctx context.Context, studentID string, amount float64) error {
	cmdTag, err := r.db.Exec(ctx,
		`UPDATE student_records SET receipt_amount = $2 WHERE student_id = $1`,
		studentID, amount)
	if err != nil {
		return fmt.Errorf("error updating receipt amount: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	return nil
}

// CountByStatus returns the number of records with the given status.
func (r *StudentRepository) CountByStatus(ctx context.Context, status models.ApprovalStatus) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM student_records WHERE approval_status = $1`,
		status).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting student records: %w", err)
	}
	return count, nil
}
