package seeder

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"dashboard-seed-backend/internal/config"
	"dashboard-seed-backend/internal/database"
	"dashboard-seed-backend/internal/fixtures"
	"dashboard-seed-backend/internal/models"
)

// Table names used for truncation and result reporting.
const (
	tableUsers     = "users"
	tableCustomers = "customers"
	tableInvoices  = "invoices"
	tableRevenues  = "revenues"
)

// Result reports what a single seeding run inserted.
type Result struct {
	Inserted map[string]int
	Duration time.Duration
}

func (r *Result) Message() string {
	return fmt.Sprintf("database seeded: %d users, %d customers, %d invoices, %d revenue rows",
		r.Inserted[tableUsers],
		r.Inserted[tableCustomers],
		r.Inserted[tableInvoices],
		r.Inserted[tableRevenues])
}

// Service seeds the dashboard tables. Each Run dials its own connection,
// scoped to the invocation and closed on every exit path.
type Service struct {
	cfg  *config.Config
	open database.OpenFunc
	log  *zap.Logger
}

func New(cfg *config.Config, log *zap.Logger) *Service {
	return &Service{
		cfg: cfg,
		open: func(ctx context.Context, dsn string) (*gorm.DB, error) {
			dialCtx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
			defer cancel()
			return database.Open(dialCtx, dsn)
		},
		log: log,
	}
}

// NewWithOpen is New with an injected dialer, used by tests.
func NewWithOpen(cfg *config.Config, open database.OpenFunc, log *zap.Logger) *Service {
	s := New(cfg, log)
	s.open = open
	return s
}

// Run walks connecting → verifying → seeding → closing. The connection is
// closed no matter which path exits; an audit row is written best effort
// whenever a connection was established.
func (s *Service) Run(ctx context.Context) (*Result, error) {
	start := time.Now()

	db, err := database.Connect(ctx, s.cfg.SeedDSN(), s.cfg.SeedMaxRetries, s.cfg.SeedRetryBackoff, s.open, s.log)
	if err != nil {
		return nil, errors.Wrap(err, "connect for seeding")
	}
	defer database.Close(db, s.log)

	res, seedErr := s.seed(ctx, db)
	res.Duration = time.Since(start)

	s.recordRun(ctx, db, res, seedErr)

	if seedErr != nil {
		return nil, seedErr
	}

	s.log.Info("seeding completed",
		zap.Duration("duration", res.Duration),
		zap.Int("users", res.Inserted[tableUsers]),
		zap.Int("customers", res.Inserted[tableCustomers]),
		zap.Int("invoices", res.Inserted[tableInvoices]),
		zap.Int("revenues", res.Inserted[tableRevenues]))

	return res, nil
}

func (s *Service) seed(ctx context.Context, db *gorm.DB) (*Result, error) {
	res := &Result{Inserted: map[string]int{}}

	if err := s.ensureSchema(ctx, db); err != nil {
		return res, errors.Wrap(err, "ensure schema")
	}

	if err := s.reset(ctx, db); err != nil {
		return res, errors.Wrap(err, "reset tables")
	}

	inserted, err := seedTables(ctx, defaultCreators(db), s.cfg.SeedChunkSize)
	res.Inserted = inserted
	return res, err
}

// tableCreators holds the insert function for each seeded table. Tests
// swap in fakes; production wiring comes from defaultCreators.
type tableCreators struct {
	users     func(context.Context, []models.User) error
	customers func(context.Context, []models.Customer) error
	invoices  func(context.Context, []models.Invoice) error
	revenues  func(context.Context, []models.Revenue) error
}

func defaultCreators(db *gorm.DB) tableCreators {
	return tableCreators{
		users:     conflictCreate[models.User](db),
		customers: conflictCreate[models.Customer](db),
		invoices:  conflictCreate[models.Invoice](db),
		revenues:  conflictCreate[models.Revenue](db),
	}
}

// seedTables fans out over the four fixture tables. Tables are seeded
// independently so one failure does not stop the others; per-table
// failures are joined into one error naming each failed table.
func seedTables(ctx context.Context, creators tableCreators, chunk int) (map[string]int, error) {
	type tableResult struct {
		name  string
		count int
		err   error
	}
	results := make(chan tableResult, 4)

	go func() {
		n, err := insertChunked(ctx, fixtures.Users(), chunk, hashUserPassword, creators.users)
		results <- tableResult{tableUsers, n, err}
	}()
	go func() {
		n, err := insertChunked(ctx, fixtures.Customers(), chunk, nil, creators.customers)
		results <- tableResult{tableCustomers, n, err}
	}()
	go func() {
		n, err := insertChunked(ctx, fixtures.Invoices(), chunk, nil, creators.invoices)
		results <- tableResult{tableInvoices, n, err}
	}()
	go func() {
		n, err := insertChunked(ctx, fixtures.RevenueRows(), chunk, nil, creators.revenues)
		results <- tableResult{tableRevenues, n, err}
	}()

	inserted := map[string]int{}
	var errs []error
	for i := 0; i < 4; i++ {
		tr := <-results
		inserted[tr.name] = tr.count
		if tr.err != nil {
			errs = append(errs, errors.Wrapf(tr.err, "seed %s", tr.name))
		}
	}

	if len(errs) > 0 {
		return inserted, joinErrors(errs)
	}
	return inserted, nil
}

func (s *Service) ensureSchema(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
		return errors.Wrap(err, "create uuid-ossp extension")
	}

	return db.WithContext(ctx).AutoMigrate(
		&models.User{},
		&models.Customer{},
		&models.Invoice{},
		&models.Revenue{},
		&models.SeedRun{},
	)
}

// reset clears prior fixture rows. seed_runs is deliberately left alone so
// the audit trail survives reruns.
func (s *Service) reset(ctx context.Context, db *gorm.DB) error {
	return db.WithContext(ctx).Exec(`TRUNCATE TABLE users, customers, invoices, revenues`).Error
}

// recordRun writes the audit row. Failures here are logged only; the
// response for the run has already been decided.
func (s *Service) recordRun(ctx context.Context, db *gorm.DB, res *Result, seedErr error) {
	run := models.SeedRun{
		ID:         uuid.New(),
		Status:     models.SeedRunStatusSucceeded,
		DurationMS: res.Duration.Milliseconds(),
		CreatedAt:  time.Now(),
	}
	if seedErr != nil {
		run.Status = models.SeedRunStatusFailed
		run.Error = seedErr.Error()
	}

	if detail, err := json.Marshal(res.Inserted); err == nil {
		run.Detail = datatypes.JSON(detail)
	}

	if err := db.WithContext(ctx).Create(&run).Error; err != nil {
		s.log.Error("record seed run", zap.Error(err))
	}
}

func hashUserPassword(u models.User) (models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
	if err != nil {
		return u, errors.Wrapf(err, "hash password for %s", u.Email)
	}
	u.Password = string(hash)
	return u, nil
}
