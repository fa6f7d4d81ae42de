package directory

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/ogurasousui/codex-hr-dashboard/internal/core/employee"
	"go.uber.org/zap"
)

// fetchFailedMessage は上流が成功以外のステータスを返した場合に利用者へ示すメッセージです。
const fetchFailedMessage = "Failed to fetch employees"

// Clock は現在時刻を提供します。
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time {
	return time.Now().UTC()
}

// Recorder は取得結果の計測先です。
type Recorder interface {
	ObserveLoad(status Status, employees int, elapsed time.Duration)
}

type noopRecorder struct{}

func (noopRecorder) ObserveLoad(Status, int, time.Duration) {}

// Option は Directory の構築オプションです。
type Option func(*Directory)

// WithPageSize は 1 回の取得件数を指定します。0 以下は無視されます。
func WithPageSize(n int) Option {
	return func(d *Directory) {
		if n > 0 {
			d.pageSize = n
		}
	}
}

// WithRand は評価付与に使う乱数源を指定します。
func WithRand(rng employee.Rand) Option {
	return func(d *Directory) { d.rng = rng }
}

func WithLogger(logger *zap.Logger) Option {
	return func(d *Directory) {
		if logger != nil {
			d.logger = logger
		}
	}
}

func WithClock(clock Clock) Option {
	return func(d *Directory) {
		if clock != nil {
			d.clock = clock
		}
	}
}

func WithRecorder(rec Recorder) Option {
	return func(d *Directory) {
		if rec != nil {
			d.recorder = rec
		}
	}
}

// Directory はセッション中の社員一覧と取得状態を保持します。
//
// 状態は Idle -> Loading -> Ready|Error の順に遷移し、部分的に更新されることはありません。
type Directory struct {
	source   employee.Source
	pageSize int
	rng      employee.Rand
	logger   *zap.Logger
	clock    Clock
	recorder Recorder

	mu     sync.RWMutex
	state  Snapshot
	gen    uint64
	closed bool
}

// New は Directory を生成します。生成直後の状態は Idle です。
func New(source employee.Source, opts ...Option) *Directory {
	d := &Directory{
		source:   source,
		pageSize: employee.DefaultPageSize,
		logger:   zap.NewNop(),
		clock:    realClock{},
		recorder: noopRecorder{},
		state:    Snapshot{Status: StatusIdle},
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Load は社員一覧を取得して状態を更新し、更新後のスナップショットを返します。
//
// 失敗はすべて Error 状態に吸収され、呼び出し元へ返されることはありません。
// 実行中に新しい Load が開始された場合や Close された場合、この取得結果は破棄されます。
func (d *Directory) Load(ctx context.Context) Snapshot {
	d.mu.Lock()
	if d.closed {
		snap := d.state
		d.mu.Unlock()
		return snap
	}
	d.gen++
	gen := d.gen
	d.state = Snapshot{Status: StatusLoading}
	d.mu.Unlock()

	logger := d.logger.With(zap.String("load_id", uuid.NewString()))
	logger.Info("loading employees", zap.Int("page_size", d.pageSize))

	started := d.clock.Now()
	next := d.fetch(ctx, logger)
	elapsed := d.clock.Now().Sub(started)

	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed || gen != d.gen {
		logger.Debug("discarding superseded load result", zap.String("status", string(next.Status)))
		return d.state
	}

	d.state = next
	d.recorder.ObserveLoad(next.Status, len(next.Employees), elapsed)
	return d.state
}

func (d *Directory) fetch(ctx context.Context, logger *zap.Logger) Snapshot {
	raw, err := d.source.FetchUsers(ctx, d.pageSize)
	if err != nil {
		logger.Warn("failed to load employees", zap.Error(err))
		return Snapshot{Status: StatusError, Err: errorMessage(err)}
	}

	employees := employee.Enrich(raw, d.rng)
	logger.Info("employees loaded", zap.Int("count", len(employees)))
	return Snapshot{Status: StatusReady, Employees: employees, LoadedAt: d.clock.Now()}
}

func errorMessage(err error) string {
	var statusErr *employee.UpstreamStatusError
	if errors.As(err, &statusErr) {
		return fetchFailedMessage
	}
	if msg := err.Error(); msg != "" {
		return msg
	}
	return "An error occurred"
}

// Close は Directory の所有者がいなくなったことを示します。以降に完了した取得結果は破棄されます。
func (d *Directory) Close() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.closed = true
}

// Snapshot は現在の状態を一貫した形で返します。返されるスライスは共有されるため変更しないでください。
func (d *Directory) Snapshot() Snapshot {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.state
}

func (d *Directory) Employees() []employee.Employee {
	return d.Snapshot().Employees
}

func (d *Directory) Loading() bool {
	return d.Snapshot().Loading()
}

// Error は Error 状態のメッセージを返します。それ以外の状態では空文字列です。
func (d *Directory) Error() string {
	return d.Snapshot().Err
}
