package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"memberhub/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type memberRepository struct {
	db *pgxpool.Pool
}

func NewMemberRepository(database *pgxpool.Pool) domain.MemberRepo {
	return &memberRepository{
		db: database,
	}
}

// Register persists the whole registration aggregate in one transaction:
// member, optional referral, business profiles, optional family record.
// Either every row is committed or none are. Staged file cleanup is the
// caller's job; this layer never touches the filesystem.
func (mr *memberRepository) Register(ctx context.Context, reg *domain.Registration) (*domain.Member, error) {
	tx, err := mr.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not begin transaction: %v", err)
	}
	defer tx.Rollback(ctx)

	// Pre-check is an optimization only; the unique constraint caught at
	// commit time is the real guarantee against concurrent duplicates.
	var existingID int
	err = tx.QueryRow(ctx, `SELECT id FROM members WHERE email = $1;`, reg.Member.Email).Scan(&existingID)
	if err == nil {
		return nil, domain.ErrEmailTaken
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("could not check for duplicate email: %v", err)
	}

	now := time.Now()

	memberInsertQuery := `
		INSERT INTO members (member_no, name, email, password, telephone, address, about, marital_status, profile_image, status, access_level, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id;
	`

	m := reg.Member
	var memberID int
	err = tx.QueryRow(ctx, memberInsertQuery,
		m.MemberNo, m.Name, m.Email, m.Password, m.Telephone, m.Address, m.About,
		m.MaritalStatus, m.ProfileImage, m.Status, m.AccessLevel, now, now,
	).Scan(&memberID)
	if err != nil {
		return nil, mapUniqueViolation(err, "could not insert member")
	}

	m.ID = memberID
	m.CreatedAt = now
	m.UpdatedAt = now

	if reg.ReferralCode != "" {
		var referrerID int
		err = tx.QueryRow(ctx, `SELECT id FROM members WHERE member_no = $1;`, reg.ReferralCode).Scan(&referrerID)
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrInvalidReferral
		}
		if err != nil {
			return nil, fmt.Errorf("could not resolve referral code: %v", err)
		}

		referralInsertQuery := `
			INSERT INTO referrals (member_id, referral_code, referral_name, referred_by, created_at)
			VALUES ($1, $2, $3, $4, $5);
		`
		if _, err := tx.Exec(ctx, referralInsertQuery, memberID, reg.ReferralCode, reg.ReferralName, referrerID, now); err != nil {
			return nil, fmt.Errorf("could not insert referral: %v", err)
		}
	}

	profileInsertQuery := `
		INSERT INTO business_profiles (member_id, company_name, company_email, company_phone, address, website, description, profile_image, media_gallery, media_type, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`

	for i := range reg.Profiles {
		p := &reg.Profiles[i]

		var gallery interface{}
		if s, ok, err := p.MediaGallery.JSON(); err != nil {
			return nil, fmt.Errorf("could not encode media gallery: %v", err)
		} else if ok {
			gallery = s
		}

		var mediaType interface{}
		if p.MediaType != "" {
			mediaType = p.MediaType
		}

		_, err = tx.Exec(ctx, profileInsertQuery,
			memberID, p.CompanyName, p.CompanyEmail, p.CompanyPhone, p.Address,
			p.Website, p.Description, p.ProfileImage, gallery, mediaType, now, now,
		)
		if err != nil {
			return nil, fmt.Errorf("could not insert business profile: %v", err)
		}
	}

	if reg.Family != nil {
		f := reg.Family

		var children interface{}
		if s, ok, err := f.ChildrenNames.JSON(); err != nil {
			return nil, fmt.Errorf("could not encode children names: %v", err)
		} else if ok {
			children = s
		}

		familyInsertQuery := `
			INSERT INTO family_records (member_id, father_name, father_contact, mother_name, mother_contact, address, spouse_name, spouse_contact, number_of_children, children_names, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
		`
		_, err = tx.Exec(ctx, familyInsertQuery,
			memberID, f.FatherName, f.FatherContact, f.MotherName, f.MotherContact,
			f.Address, f.SpouseName, f.SpouseContact, f.NumberOfChildren, children, now, now,
		)
		if err != nil {
			return nil, fmt.Errorf("could not insert family record: %v", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, mapUniqueViolation(err, "could not commit transaction")
	}

	return &m, nil
}

func (mr *memberRepository) GetMemberDetail(ctx context.Context, id int) (*domain.MemberDetail, error) {
	memberQuery := `
		SELECT id, member_no, name, email, password, telephone, address, about, marital_status, profile_image, status, access_level, created_at, updated_at
		FROM members
		WHERE id = $1;
	`

	var detail domain.MemberDetail
	err := mr.db.QueryRow(ctx, memberQuery, id).Scan(
		&detail.Member.ID, &detail.Member.MemberNo, &detail.Member.Name, &detail.Member.Email,
		&detail.Member.Password, &detail.Member.Telephone, &detail.Member.Address, &detail.Member.About,
		&detail.Member.MaritalStatus, &detail.Member.ProfileImage, &detail.Member.Status,
		&detail.Member.AccessLevel, &detail.Member.CreatedAt, &detail.Member.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("could not get member: %v", err)
	}

	profilesQuery := `
		SELECT id, member_id, company_name, company_email, company_phone, address, website, description, profile_image, media_gallery, media_type, created_at, updated_at
		FROM business_profiles
		WHERE member_id = $1
		ORDER BY id;
	`

	rows, err := mr.db.Query(ctx, profilesQuery, id)
	if err != nil {
		return nil, fmt.Errorf("could not get business profiles: %v", err)
	}
	defer rows.Close()

	for rows.Next() {
		var p domain.BusinessProfile
		var gallery, mediaType *string

		err := rows.Scan(&p.ID, &p.MemberID, &p.CompanyName, &p.CompanyEmail, &p.CompanyPhone,
			&p.Address, &p.Website, &p.Description, &p.ProfileImage, &gallery, &mediaType,
			&p.CreatedAt, &p.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("could not scan business profile: %v", err)
		}

		if gallery != nil {
			if err := p.MediaGallery.Scan(*gallery); err != nil {
				return nil, fmt.Errorf("could not decode media gallery: %v", err)
			}
		}
		if mediaType != nil {
			p.MediaType = *mediaType
		}

		detail.Profiles = append(detail.Profiles, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %v", err)
	}

	familyQuery := `
		SELECT id, member_id, father_name, father_contact, mother_name, mother_contact, address, spouse_name, spouse_contact, number_of_children, children_names, created_at, updated_at
		FROM family_records
		WHERE member_id = $1;
	`

	var f domain.FamilyRecord
	var children *string
	err = mr.db.QueryRow(ctx, familyQuery, id).Scan(
		&f.ID, &f.MemberID, &f.FatherName, &f.FatherContact, &f.MotherName, &f.MotherContact,
		&f.Address, &f.SpouseName, &f.SpouseContact, &f.NumberOfChildren, &children,
		&f.CreatedAt, &f.UpdatedAt,
	)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("could not get family record: %v", err)
	}
	if err == nil {
		if children != nil {
			if err := f.ChildrenNames.Scan(*children); err != nil {
				return nil, fmt.Errorf("could not decode children names: %v", err)
			}
		}
		detail.Family = &f
	}

	return &detail, nil
}

func (mr *memberRepository) FindMemberByNo(ctx context.Context, memberNo string) (*domain.Member, error) {
	query := `
		SELECT id, member_no, name, email, telephone, address, about, marital_status, profile_image, status, access_level, created_at, updated_at
		FROM members
		WHERE member_no = $1;
	`

	var m domain.Member
	err := mr.db.QueryRow(ctx, query, memberNo).Scan(
		&m.ID, &m.MemberNo, &m.Name, &m.Email, &m.Telephone, &m.Address, &m.About,
		&m.MaritalStatus, &m.ProfileImage, &m.Status, &m.AccessLevel, &m.CreatedAt, &m.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("could not find member: %v", err)
	}

	return &m, nil
}

// UpdateMember patches scalar member fields only. Business profiles and
// family records have their own upsert paths; re-creating child rows here
// would orphan their files, so it is intentionally not done.
func (mr *memberRepository) UpdateMember(ctx context.Context, id int, patch *domain.MemberUpdate) error {
	tx, err := mr.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("could not begin transaction: %v", err)
	}
	defer tx.Rollback(ctx)

	selectQuery := `
		SELECT name, telephone, address, about, marital_status, password
		FROM members
		WHERE id = $1
		FOR UPDATE;
	`

	var current struct {
		Name, Telephone, Address, About, MaritalStatus, Password string
	}
	err = tx.QueryRow(ctx, selectQuery, id).Scan(
		&current.Name, &current.Telephone, &current.Address, &current.About,
		&current.MaritalStatus, &current.Password,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("could not load member for update: %v", err)
	}

	if patch.Name != nil {
		current.Name = *patch.Name
	}
	if patch.Telephone != nil {
		current.Telephone = *patch.Telephone
	}
	if patch.Address != nil {
		current.Address = *patch.Address
	}
	if patch.About != nil {
		current.About = *patch.About
	}
	if patch.MaritalStatus != nil {
		current.MaritalStatus = *patch.MaritalStatus
	}
	if patch.Password != nil {
		// Already hashed by the usecase.
		current.Password = *patch.Password
	}

	updateQuery := `
		UPDATE members
		SET name = $1, telephone = $2, address = $3, about = $4, marital_status = $5, password = $6, updated_at = $7
		WHERE id = $8;
	`
	_, err = tx.Exec(ctx, updateQuery,
		current.Name, current.Telephone, current.Address, current.About,
		current.MaritalStatus, current.Password, time.Now(), id,
	)
	if err != nil {
		return fmt.Errorf("could not update member: %v", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("could not commit transaction: %v", err)
	}

	return nil
}

func (mr *memberRepository) DeleteMember(ctx context.Context, id int) error {
	// Child rows go with the member via ON DELETE CASCADE.
	result, err := mr.db.Exec(ctx, `DELETE FROM members WHERE id = $1;`, id)
	if err != nil {
		return fmt.Errorf("could not delete member: %v", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// mapUniqueViolation turns postgres unique-constraint violations into the
// domain errors the orchestrator understands. Anything else is wrapped.
func mapUniqueViolation(err error, msg string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		switch pgErr.ConstraintName {
		case "members_email_key":
			return domain.ErrEmailTaken
		case "members_member_no_key":
			return domain.ErrDuplicateMemberNo
		}
	}
	return fmt.Errorf("%s: %v", msg, err)
}
