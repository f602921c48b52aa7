package integration

import (
	"context"
	"fmt"
	"sync"
	"time"

	"gd-arcade/internal/core/domain"
	"gd-arcade/internal/core/ports"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// --- In-Memory Balance Repo ---

type inMemoryBalanceRepo struct {
	mu       sync.RWMutex
	balances map[string]*domain.Balance
}

func newInMemoryBalanceRepo() *inMemoryBalanceRepo {
	return &inMemoryBalanceRepo{balances: make(map[string]*domain.Balance)}
}

func (r *inMemoryBalanceRepo) GetByWallet(ctx context.Context, wallet string) (*domain.Balance, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	b, ok := r.balances[wallet]
	if !ok {
		return nil, nil
	}
	copied := *b
	return &copied, nil
}

func (r *inMemoryBalanceRepo) GetForUpdate(ctx context.Context, tx pgx.Tx, wallet string) (*domain.Balance, error) {
	return r.GetByWallet(ctx, wallet)
}

func (r *inMemoryBalanceRepo) EnsureAndLock(ctx context.Context, tx pgx.Tx, wallet string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.balances[wallet]; !ok {
		r.balances[wallet] = &domain.Balance{WalletAddress: wallet, CreatedAt: time.Now().UTC()}
	}
	return nil
}

func (r *inMemoryBalanceRepo) CreditDeposit(ctx context.Context, tx pgx.Tx, wallet string, amount domain.Amount, depositDate time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.balances[wallet]
	if !ok {
		b = &domain.Balance{WalletAddress: wallet, CreatedAt: time.Now().UTC()}
		r.balances[wallet] = b
	}
	b.Available += amount
	b.LastDepositDate = &depositDate
	b.UpdatedAt = time.Now().UTC()
	return nil
}

func (r *inMemoryBalanceRepo) SetAvailable(ctx context.Context, tx pgx.Tx, wallet string, available domain.Amount) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.balances[wallet]
	if !ok {
		return fmt.Errorf("balance not found")
	}
	b.Available = available
	b.UpdatedAt = time.Now().UTC()
	return nil
}

func (r *inMemoryBalanceRepo) ApplyWithdrawal(ctx context.Context, tx pgx.Tx, wallet string, available, totalWithdrawn domain.Amount, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.balances[wallet]
	if !ok {
		return fmt.Errorf("balance not found")
	}
	b.Available = available
	b.TotalWithdrawn = totalWithdrawn
	b.LastWithdrawalAt = &at
	b.UpdatedAt = at
	return nil
}

// --- In-Memory Deposit Repo ---

type inMemoryDepositRepo struct {
	mu       sync.RWMutex
	deposits []*domain.Deposit
	byHash   map[string]*domain.Deposit
	nextID   int64
}

func newInMemoryDepositRepo() *inMemoryDepositRepo {
	return &inMemoryDepositRepo{byHash: make(map[string]*domain.Deposit), nextID: 1}
}

func (r *inMemoryDepositRepo) Insert(ctx context.Context, tx pgx.Tx, d *domain.Deposit) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.byHash[d.TxHash]; exists {
		return false, nil
	}
	d.ID = r.nextID
	r.nextID++
	copied := *d
	r.deposits = append(r.deposits, &copied)
	r.byHash[d.TxHash] = &copied
	return true, nil
}

func (r *inMemoryDepositRepo) ExistsByTxHash(ctx context.Context, txHash string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.byHash[txHash]
	return ok, nil
}

func (r *inMemoryDepositRepo) SumForDate(ctx context.Context, tx pgx.Tx, wallet string, date time.Time) (domain.Amount, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var sum domain.Amount
	for _, d := range r.deposits {
		if d.WalletAddress == wallet && d.DepositDate.Equal(date) {
			sum += d.Amount
		}
	}
	return sum, nil
}

func (r *inMemoryDepositRepo) ListByWallet(ctx context.Context, wallet string, limit, offset int) ([]domain.Deposit, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var result []domain.Deposit
	for i := len(r.deposits) - 1; i >= 0; i-- {
		if r.deposits[i].WalletAddress == wallet {
			result = append(result, *r.deposits[i])
		}
	}
	return paginate(result, limit, offset), nil
}

// --- In-Memory Session Repo ---

type inMemorySessionRepo struct {
	mu       sync.RWMutex
	sessions map[string]*domain.GameSession
	order    []string
}

func newInMemorySessionRepo() *inMemorySessionRepo {
	return &inMemorySessionRepo{sessions: make(map[string]*domain.GameSession)}
}

func (r *inMemorySessionRepo) Create(ctx context.Context, tx pgx.Tx, s *domain.GameSession) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *s
	r.sessions[s.SessionID] = &copied
	r.order = append(r.order, s.SessionID)
	return nil
}

func (r *inMemorySessionRepo) GetByID(ctx context.Context, sessionID string) (*domain.GameSession, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sessions[sessionID]
	if !ok {
		return nil, nil
	}
	copied := *s
	return &copied, nil
}

func (r *inMemorySessionRepo) Complete(ctx context.Context, tx pgx.Tx, sessionID string, score int, earned domain.Amount, gameData []byte, completedAt time.Time) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[sessionID]
	if !ok || s.Status != domain.SessionStatusInProgress {
		return false, nil
	}
	s.Status = domain.SessionStatusCompleted
	s.Score = &score
	s.GDollarEarned = &earned
	if gameData != nil {
		s.GameData = gameData
	}
	s.CompletedAt = &completedAt
	return true, nil
}

func (r *inMemorySessionRepo) ListByWallet(ctx context.Context, wallet string, limit, offset int) ([]domain.GameSession, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var result []domain.GameSession
	for i := len(r.order) - 1; i >= 0; i-- {
		s := r.sessions[r.order[i]]
		if s.WalletAddress == wallet {
			result = append(result, *s)
		}
	}
	return paginate(result, limit, offset), nil
}

func (r *inMemorySessionRepo) StatsByWallet(ctx context.Context, wallet string) ([]ports.GameStats, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	byType := make(map[domain.GameType]*ports.GameStats)
	for _, id := range r.order {
		s := r.sessions[id]
		if s.WalletAddress != wallet {
			continue
		}
		st, ok := byType[s.GameType]
		if !ok {
			st = &ports.GameStats{GameType: s.GameType}
			byType[s.GameType] = st
		}
		st.TotalPlays++
		st.TotalWagered += s.BetAmount
		if s.GDollarEarned != nil {
			st.TotalEarned += *s.GDollarEarned
		}
		if s.Score != nil && *s.Score > st.BestScore {
			st.BestScore = *s.Score
		}
	}
	var result []ports.GameStats
	for _, st := range byType {
		result = append(result, *st)
	}
	return result, nil
}

// --- In-Memory Daily Limit Repo ---

type inMemoryDailyLimitRepo struct {
	mu     sync.RWMutex
	limits map[string]*domain.DailyLimit
	nextID int64
}

func newInMemoryDailyLimitRepo() *inMemoryDailyLimitRepo {
	return &inMemoryDailyLimitRepo{limits: make(map[string]*domain.DailyLimit), nextID: 1}
}

func limitKey(wallet string, gameType domain.GameType, date time.Time) string {
	return fmt.Sprintf("%s|%s|%s", wallet, gameType, date.Format("2006-01-02"))
}

func (r *inMemoryDailyLimitRepo) Get(ctx context.Context, wallet string, gameType domain.GameType, date time.Time) (*domain.DailyLimit, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	l, ok := r.limits[limitKey(wallet, gameType, date)]
	if !ok {
		return nil, nil
	}
	copied := *l
	return &copied, nil
}

func (r *inMemoryDailyLimitRepo) ReservePlay(ctx context.Context, tx pgx.Tx, wallet string, gameType domain.GameType, date time.Time, maxPlays int) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := limitKey(wallet, gameType, date)
	l, ok := r.limits[key]
	if !ok {
		l = &domain.DailyLimit{
			ID:            r.nextID,
			WalletAddress: wallet,
			GameType:      gameType,
			GameDate:      date,
		}
		r.nextID++
		r.limits[key] = l
	}
	if l.PlaysToday >= maxPlays {
		return false, nil
	}
	l.PlaysToday++
	return true, nil
}

func (r *inMemoryDailyLimitRepo) AddEarned(ctx context.Context, tx pgx.Tx, wallet string, gameType domain.GameType, date time.Time, earned domain.Amount) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	l, ok := r.limits[limitKey(wallet, gameType, date)]
	if !ok {
		return fmt.Errorf("daily limit row not found")
	}
	l.EarnedToday += earned
	return nil
}

// --- In-Memory Withdrawal Repo ---

type inMemoryWithdrawalRepo struct {
	mu          sync.RWMutex
	withdrawals map[uuid.UUID]*domain.Withdrawal
	order       []uuid.UUID
}

func newInMemoryWithdrawalRepo() *inMemoryWithdrawalRepo {
	return &inMemoryWithdrawalRepo{withdrawals: make(map[uuid.UUID]*domain.Withdrawal)}
}

func (r *inMemoryWithdrawalRepo) Create(ctx context.Context, tx pgx.Tx, w *domain.Withdrawal) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *w
	r.withdrawals[w.ID] = &copied
	r.order = append(r.order, w.ID)
	return nil
}

func (r *inMemoryWithdrawalRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Withdrawal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	w, ok := r.withdrawals[id]
	if !ok {
		return nil, nil
	}
	copied := *w
	return &copied, nil
}

func (r *inMemoryWithdrawalRepo) MarkCompleted(ctx context.Context, tx pgx.Tx, id uuid.UUID, txHash string, completedAt time.Time) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	w, ok := r.withdrawals[id]
	if !ok || w.Status != domain.WithdrawalStatusPending {
		return false, nil
	}
	w.Status = domain.WithdrawalStatusCompleted
	w.TxHash = &txHash
	w.CompletedAt = &completedAt
	return true, nil
}

func (r *inMemoryWithdrawalRepo) MarkFailed(ctx context.Context, tx pgx.Tx, id uuid.UUID, reason string, completedAt time.Time) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	w, ok := r.withdrawals[id]
	if !ok || w.Status != domain.WithdrawalStatusPending {
		return false, nil
	}
	w.Status = domain.WithdrawalStatusFailed
	w.FailureReason = &reason
	w.CompletedAt = &completedAt
	return true, nil
}

func (r *inMemoryWithdrawalRepo) ListByWallet(ctx context.Context, wallet string, limit, offset int) ([]domain.Withdrawal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var result []domain.Withdrawal
	for i := len(r.order) - 1; i >= 0; i-- {
		w := r.withdrawals[r.order[i]]
		if w.WalletAddress == wallet {
			result = append(result, *w)
		}
	}
	return paginate(result, limit, offset), nil
}

func paginate[T any](items []T, limit, offset int) []T {
	if offset >= len(items) {
		return []T{}
	}
	end := offset + limit
	if end > len(items) {
		end = len(items)
	}
	return items[offset:end]
}

// --- In-Memory Transactor ---

// inMemoryTransactor serializes "transactions" behind one mutex, standing in
// for the row locks the real store takes. Concurrent service calls therefore
// observe the same interleaving guarantees the SQL layer provides.
type inMemoryTransactor struct {
	mu sync.Mutex
}

func newInMemoryTransactor() *inMemoryTransactor {
	return &inMemoryTransactor{}
}

func (t *inMemoryTransactor) Begin(ctx context.Context) (pgx.Tx, error) {
	t.mu.Lock()
	return &memTx{mu: &t.mu}, nil
}

type memTx struct {
	noopTx
	mu   *sync.Mutex
	once sync.Once
}

func (t *memTx) Commit(ctx context.Context) error {
	t.once.Do(t.mu.Unlock)
	return nil
}

func (t *memTx) Rollback(ctx context.Context) error {
	t.once.Do(t.mu.Unlock)
	return nil
}

// noopTx fills out the rest of the pgx.Tx surface.
type noopTx struct{}

func (t *noopTx) Begin(ctx context.Context) (pgx.Tx, error) { return t, nil }
func (t *noopTx) Commit(ctx context.Context) error          { return nil }
func (t *noopTx) Rollback(ctx context.Context) error        { return nil }
func (t *noopTx) CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error) {
	return 0, nil
}
func (t *noopTx) SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults { return nil }
func (t *noopTx) LargeObjects() pgx.LargeObjects                               { return pgx.LargeObjects{} }
func (t *noopTx) Prepare(ctx context.Context, name, sql string) (*pgconn.StatementDescription, error) {
	return nil, nil
}
func (t *noopTx) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.NewCommandTag(""), nil
}
func (t *noopTx) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}
func (t *noopTx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return nil
}
func (t *noopTx) Conn() *pgx.Conn { return nil }
