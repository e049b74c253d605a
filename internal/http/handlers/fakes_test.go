package handlers

import (
	"context"
	"io"
	"time"

	"github.com/rs/zerolog"

	"jakob/internal/domain"
	"jakob/internal/service"
)

type fakeUserRepo struct {
	users    map[int64]*domain.User
	byHandle map[string]bool
	byPhone  map[string]bool
	nextID   int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		users:    make(map[int64]*domain.User),
		byHandle: make(map[string]bool),
		byPhone:  make(map[string]bool),
	}
}

func (f *fakeUserRepo) add(u domain.User) *fakeUserRepo {
	f.users[u.ID] = &u
	f.byHandle[u.Username] = true
	f.byPhone[u.Telephone] = true
	if u.ID > f.nextID {
		f.nextID = u.ID
	}
	return f
}

func (f *fakeUserRepo) Create(_ context.Context, username, telephone string) (int64, error) {
	if f.byHandle[username] || f.byPhone[telephone] {
		return 0, domain.ErrConflict
	}
	f.nextID++
	f.add(domain.User{ID: f.nextID, Username: username, Telephone: telephone, Active: true, CreatedAt: time.Now()})
	return f.nextID, nil
}

func (f *fakeUserRepo) ExistsByUsernameOrPhone(_ context.Context, username, telephone string) (bool, error) {
	return f.byHandle[username] || f.byPhone[telephone], nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id int64) (*domain.User, error) {
	if u, ok := f.users[id]; ok {
		return u, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeUserRepo) GetCreatorByID(_ context.Context, id int64) (*domain.User, error) {
	if u, ok := f.users[id]; ok && u.IsCreator {
		return u, nil
	}
	return nil, domain.ErrNotFound
}

type fakeTransactionRepo struct {
	byRef  map[string]*domain.Transaction
	order  []*domain.Transaction
	nextID int64
}

func newFakeTransactionRepo() *fakeTransactionRepo {
	return &fakeTransactionRepo{byRef: make(map[string]*domain.Transaction)}
}

func (f *fakeTransactionRepo) Insert(_ context.Context, tx *domain.Transaction) (domain.InsertOutcome, error) {
	if _, dup := f.byRef[tx.ExternalRef]; dup {
		return domain.InsertAlreadyExists, nil
	}
	f.nextID++
	tx.ID = f.nextID
	tx.CreatedAt = time.Now()
	copied := *tx
	f.byRef[tx.ExternalRef] = &copied
	f.order = append(f.order, &copied)
	return domain.InsertCreated, nil
}

func (f *fakeTransactionRepo) ListByRecipient(_ context.Context, recipientID int64, limit int) ([]domain.Transaction, error) {
	var out []domain.Transaction
	for i := len(f.order) - 1; i >= 0 && len(out) < limit; i-- {
		if f.order[i].RecipientID == recipientID {
			out = append(out, *f.order[i])
		}
	}
	return out, nil
}

type fakeStatsRepo struct {
	summary *domain.StatsSummary
	err     error
}

func (f *fakeStatsRepo) Summary(context.Context) (*domain.StatsSummary, error) {
	return f.summary, f.err
}

func newTestApp(users *fakeUserRepo, transactions *fakeTransactionRepo, stats domain.StatsRepository) *App {
	logger := zerolog.New(io.Discard)
	signup := service.NewSignupService(users, domain.DefaultCountryCode, logger)
	donations := service.NewDonationService(users, transactions, "/thanks.html", logger)
	return NewApp(signup, donations, users, transactions, stats, logger)
}
