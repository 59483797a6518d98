package postgres

import (
	"context"
	"strings"
	"time"

	"majorexplorer/internal/domain/entity"
	"majorexplorer/internal/domain/repository"
	"majorexplorer/internal/errors"
	"majorexplorer/internal/infra/persistence/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"
)

const insertAccountSQL = `INSERT INTO accounts (username, email, password_hash, created_at, updated_at)
VALUES (?, ?, ?, NOW(), NOW())
ON CONFLICT DO NOTHING
RETURNING id, created_at, updated_at`

// accountRepository implements repository.AccountRepository using GORM.
type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository binds an account repository to db, which may be a transaction.
func NewAccountRepository(db *gorm.DB) repository.AccountRepository {
	return &accountRepository{db: db}
}

// Create inserts the account guarded by the username and email unique constraints.
func (repo *accountRepository) Create(ctx context.Context, account *entity.Account) (repository.Outcome, error) {
	var inserted struct {
		ID        int64
		CreatedAt time.Time
		UpdatedAt time.Time
	}

	result := repo.db.WithContext(ctx).
		Raw(insertAccountSQL, account.Username, account.Email, account.PasswordHash).
		Scan(&inserted)
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return repository.OutcomeDuplicate, nil
		}

		return 0, databaseError(result.Error, "failed to create account")
	}

	// ON CONFLICT DO NOTHING returns no row when username or email is taken.
	if result.RowsAffected == 0 {
		return repository.OutcomeDuplicate, nil
	}

	account.ID = inserted.ID
	account.CreatedAt = inserted.CreatedAt
	account.UpdatedAt = inserted.UpdatedAt

	return repository.OutcomeApplied, nil
}

// FindByID retrieves a single account by id.
func (repo *accountRepository) FindByID(ctx context.Context, id int64) (*entity.Account, error) {
	return repo.findOne(ctx, "id = ?", id)
}

// FindByUsername retrieves a single account by exact username.
func (repo *accountRepository) FindByUsername(ctx context.Context, username string) (*entity.Account, error) {
	return repo.findOne(ctx, "username = ?", username)
}

// FindByEmail retrieves a single account by exact email.
func (repo *accountRepository) FindByEmail(ctx context.Context, email string) (*entity.Account, error) {
	return repo.findOne(ctx, "email = ?", email)
}

func (repo *accountRepository) FindByUsernameOrEmail(ctx context.Context, identifier string) (*entity.Account, error) {
	if repository.IsEmailIdentifier(identifier) {
		return repo.FindByEmail(ctx, identifier)
	}

	return repo.FindByUsername(ctx, identifier)
}

func (repo *accountRepository) findOne(ctx context.Context, query string, arg any) (*entity.Account, error) {
	var accountM model.AccountModel

	// Reads that follow a write, such as login after signup, must not hit a lagging replica.
	err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Where(query, arg).
		First(&accountM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find account")
	}

	return toAccountDomain(&accountM), nil
}

// UpdateFields locks the account row, checks every provided identifier against other accounts, then writes.
func (repo *accountRepository) UpdateFields(
	ctx context.Context,
	id int64,
	update entity.AccountUpdate,
) (repository.UpdateResult, error) {
	db := repo.db.WithContext(ctx)

	var locked model.AccountModel
	err := db.Clauses(clause.Locking{Strength: "UPDATE"}).
		Select("id").
		Where("id = ?", id).
		Take(&locked).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return repository.UpdateResult{Outcome: repository.OutcomeNotFound}, nil
		}

		return repository.UpdateResult{}, errors.Wrap(err, "failed to lock account")
	}

	if update.Username != nil {
		taken, err := repo.takenByOther(db, repository.FieldUsername, *update.Username, id)
		if err != nil {
			return repository.UpdateResult{}, err
		}
		if taken {
			return duplicateOn(repository.FieldUsername), nil
		}
	}

	if update.Email != nil {
		taken, err := repo.takenByOther(db, repository.FieldEmail, *update.Email, id)
		if err != nil {
			return repository.UpdateResult{}, err
		}
		if taken {
			return duplicateOn(repository.FieldEmail), nil
		}
	}

	values := map[string]any{"updated_at": gorm.Expr("NOW()")}
	if update.Username != nil {
		values["username"] = *update.Username
	}
	if update.Email != nil {
		values["email"] = *update.Email
	}
	if update.PasswordHash != nil {
		values["password_hash"] = *update.PasswordHash
	}

	result := db.Model(&model.AccountModel{}).Where("id = ?", id).Updates(values)
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return duplicateOn(conflictField(result.Error)), nil
		}

		return repository.UpdateResult{}, databaseError(result.Error, "failed to update account")
	}
	if result.RowsAffected == 0 {
		return repository.UpdateResult{Outcome: repository.OutcomeNotFound}, nil
	}

	return repository.UpdateResult{Outcome: repository.OutcomeApplied}, nil
}

func (repo *accountRepository) takenByOther(db *gorm.DB, column, value string, id int64) (bool, error) {
	var count int64
	err := db.Model(&model.AccountModel{}).
		Where(column+" = ? AND id <> ?", value, id).
		Count(&count).Error
	if err != nil {
		return false, errors.Wrapf(err, "failed to check %s uniqueness", column)
	}

	return count > 0, nil
}

// Count returns the number of accounts.
func (repo *accountRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.AccountModel{}).Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count accounts")
	}

	return count, nil
}

func duplicateOn(field string) repository.UpdateResult {
	return repository.UpdateResult{Outcome: repository.OutcomeDuplicate, Conflict: field}
}

// conflictField attributes a unique violation to a column through the constraint name.
func conflictField(err error) string {
	if strings.Contains(constraintName(err), repository.FieldEmail) {
		return repository.FieldEmail
	}

	return repository.FieldUsername
}

// --- Mapper Functions ---

func toAccountDomain(data *model.AccountModel) *entity.Account {
	if data == nil {
		return nil
	}

	return &entity.Account{
		ID:           data.ID,
		Username:     data.Username,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
