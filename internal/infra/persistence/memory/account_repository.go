package memory

import (
	"context"

	"majorexplorer/internal/domain/entity"
	"majorexplorer/internal/domain/repository"
)

type accountRepository struct {
	store *Store
	scope scope
}

// NewAccountRepository returns an account repository over the committed state of store.
func NewAccountRepository(store *Store) repository.AccountRepository {
	return &accountRepository{store: store, scope: store}
}

func (repo *accountRepository) Create(ctx context.Context, account *entity.Account) (repository.Outcome, error) {
	outcome := repository.OutcomeApplied

	err := repo.scope.write(ctx, func(d *dataset) error {
		for _, existing := range d.accounts {
			if existing.Username == account.Username || existing.Email == account.Email {
				outcome = repository.OutcomeDuplicate

				return nil
			}
		}

		now := repo.store.now()
		stored := *account
		stored.ID = d.nextAccountID
		stored.CreatedAt = now
		stored.UpdatedAt = now

		d.accounts[stored.ID] = stored
		d.nextAccountID++
		*account = stored

		return nil
	})
	if err != nil {
		return 0, err
	}

	return outcome, nil
}

func (repo *accountRepository) FindByID(ctx context.Context, id int64) (*entity.Account, error) {
	return repo.findOne(func(a entity.Account) bool { return a.ID == id })
}

func (repo *accountRepository) FindByUsername(ctx context.Context, username string) (*entity.Account, error) {
	return repo.findOne(func(a entity.Account) bool { return a.Username == username })
}

func (repo *accountRepository) FindByEmail(ctx context.Context, email string) (*entity.Account, error) {
	return repo.findOne(func(a entity.Account) bool { return a.Email == email })
}

func (repo *accountRepository) FindByUsernameOrEmail(ctx context.Context, identifier string) (*entity.Account, error) {
	if repository.IsEmailIdentifier(identifier) {
		return repo.FindByEmail(ctx, identifier)
	}

	return repo.FindByUsername(ctx, identifier)
}

func (repo *accountRepository) findOne(match func(entity.Account) bool) (*entity.Account, error) {
	var found *entity.Account

	err := repo.scope.read(func(d *dataset) error {
		for _, account := range d.accounts {
			if match(account) {
				a := account
				found = &a

				return nil
			}
		}

		return repository.ErrAccountNotFound
	})
	if err != nil {
		return nil, err
	}

	return found, nil
}

func (repo *accountRepository) UpdateFields(
	ctx context.Context,
	id int64,
	update entity.AccountUpdate,
) (repository.UpdateResult, error) {
	result := repository.UpdateResult{Outcome: repository.OutcomeApplied}

	err := repo.scope.write(ctx, func(d *dataset) error {
		account, ok := d.accounts[id]
		if !ok {
			result = repository.UpdateResult{Outcome: repository.OutcomeNotFound}

			return nil
		}

		if field := conflictingField(d, id, update); field != "" {
			result = repository.UpdateResult{Outcome: repository.OutcomeDuplicate, Conflict: field}

			return nil
		}

		if update.Username != nil {
			account.Username = *update.Username
		}
		if update.Email != nil {
			account.Email = *update.Email
		}
		if update.PasswordHash != nil {
			account.PasswordHash = *update.PasswordHash
		}
		account.UpdatedAt = repo.store.now()
		d.accounts[id] = account

		return nil
	})
	if err != nil {
		return repository.UpdateResult{}, err
	}

	return result, nil
}

// conflictingField checks username before email, the order the PostgreSQL repository uses.
func conflictingField(d *dataset, id int64, update entity.AccountUpdate) string {
	if update.Username != nil {
		for _, other := range d.accounts {
			if other.ID != id && other.Username == *update.Username {
				return repository.FieldUsername
			}
		}
	}
	if update.Email != nil {
		for _, other := range d.accounts {
			if other.ID != id && other.Email == *update.Email {
				return repository.FieldEmail
			}
		}
	}

	return ""
}

func (repo *accountRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := repo.scope.read(func(d *dataset) error {
		count = int64(len(d.accounts))

		return nil
	})

	return count, err
}
