package mintform

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/clawdcat/mintboard/pkg/ethutil"
	"github.com/clawdcat/mintboard/pkg/xcontext"
	"github.com/ethereum/go-ethereum/common"
)

const (
	InvalidAmountMessage = "Invalid amount"
	SuccessMessage       = "Transaction confirmed! Your tokens have been minted."
	FailureMessage       = "Transaction failed. Please try again."
	PendingMessage       = "Transaction pending..."

	LabelProcessing = "Processing..."
	LabelSuccess    = "Success!"
	LabelMint       = "Mint Tokens"
)

type Options struct {
	DefaultAmount           string
	SuccessResetDelay       time.Duration
	ErrorResetDelay         time.Duration
	InvalidAmountResetDelay time.Duration

	Clock  clock.Clock
	Writer Writer

	// Refetch is called when a mint is confirmed.
	Refetch func()

	// Observer receives a snapshot after every change.
	Observer func(FormView)

	ExplorerTxURL func(hash common.Hash) string
}

type FormView struct {
	Amount        string `json:"amount"`
	Status        Status `json:"status"`
	ErrorMessage  string `json:"error_message"`
	StatusMessage string `json:"status_message"`
	TxHash        string `json:"tx_hash"`
	ExplorerURL   string `json:"explorer_url"`
	CanSubmit     bool   `json:"can_submit"`
	ButtonLabel   string `json:"button_label"`
	InputDisabled bool   `json:"input_disabled"`
}

// Form is the mint card state of one mounted session.
type Form struct {
	opts Options

	mutex        sync.Mutex
	amount       string
	status       Status
	errorMessage string
	flags        Flags
	timers       map[*clock.Timer]struct{}
	closed       bool
}

func New(opts Options) *Form {
	if opts.DefaultAmount == "" {
		opts.DefaultAmount = "1"
	}

	if opts.Clock == nil {
		opts.Clock = clock.New()
	}

	return &Form{
		opts:   opts,
		amount: opts.DefaultAmount,
		status: StatusIdle,
		timers: make(map[*clock.Timer]struct{}),
	}
}

// SetAmount is ignored while a mint is pending.
func (f *Form) SetAmount(amount string) {
	f.mutex.Lock()
	if f.closed || f.status == StatusPending {
		f.mutex.Unlock()
		return
	}

	f.amount = amount
	view := f.view()
	f.mutex.Unlock()

	f.notify(view)
}

func (f *Form) CanSubmit() bool {
	f.mutex.Lock()
	defer f.mutex.Unlock()

	return f.canSubmit()
}

func (f *Form) canSubmit() bool {
	if f.closed || f.amount == "" || f.status == StatusPending {
		return false
	}

	value, err := strconv.ParseFloat(f.amount, 64)
	return err == nil && value > 0
}

// Submit forwards a single write when the form is submittable. Nothing
// happens while the contract or its decimals are unknown. It reports whether
// a write was started.
func (f *Form) Submit(ctx context.Context, decimals *uint8, contract *common.Address) bool {
	if contract == nil || decimals == nil {
		xcontext.Logger(ctx).Debugf("Mint ignored, contract or decimals not loaded")
		return false
	}

	f.mutex.Lock()
	if !f.canSubmit() {
		f.mutex.Unlock()
		return false
	}

	amount, err := ethutil.ParseUnits(f.amount, *decimals)
	if err != nil {
		xcontext.Logger(ctx).Warnf("Cannot parse mint amount %q: %v", f.amount, err)
		f.status = StatusError
		f.errorMessage = InvalidAmountMessage
		f.schedule(f.opts.InvalidAmountResetDelay, f.resetError)
		view := f.view()
		f.mutex.Unlock()

		f.notify(view)
		return false
	}

	// Pending is entered right away so a second submit cannot race the
	// writer's first report.
	f.enterPending()
	view := f.view()
	f.mutex.Unlock()

	f.notify(view)
	f.opts.Writer.Write(WriteRequest{Contract: *contract, Amount: amount})
	return true
}

// Apply maps the writer's flags onto the form status. Identical consecutive
// flags are ignored.
func (f *Form) Apply(flags Flags) {
	f.mutex.Lock()
	if f.closed || flags.equal(f.flags) {
		f.mutex.Unlock()
		return
	}

	f.flags = flags
	refetch := false
	switch {
	case flags.WritePending || flags.Confirming:
		f.enterPending()

	case flags.Confirmed:
		f.status = StatusSuccess
		f.errorMessage = ""
		refetch = true
		f.schedule(f.opts.SuccessResetDelay, f.resetSuccess)

	case flags.WriteErr != nil:
		f.status = StatusError
		f.errorMessage = flags.WriteErr.Error()
		f.schedule(f.opts.ErrorResetDelay, f.resetError)
	}

	view := f.view()
	f.mutex.Unlock()

	if refetch && f.opts.Refetch != nil {
		f.opts.Refetch()
	}

	f.notify(view)
}

func (f *Form) View() FormView {
	f.mutex.Lock()
	defer f.mutex.Unlock()

	return f.view()
}

// Close cancels every scheduled reset. The form ignores all updates after it.
func (f *Form) Close() {
	f.mutex.Lock()
	defer f.mutex.Unlock()

	f.closed = true
	f.stopTimers()
}

func (f *Form) enterPending() {
	// A reset left over from the previous mint must not fire mid-flight.
	f.stopTimers()
	f.status = StatusPending
	f.errorMessage = ""
}

func (f *Form) resetSuccess() {
	f.status = StatusIdle
	f.amount = f.opts.DefaultAmount
}

func (f *Form) resetError() {
	f.status = StatusIdle
	f.errorMessage = ""
}

// schedule must be called with the mutex held.
func (f *Form) schedule(delay time.Duration, reset func()) {
	var timer *clock.Timer
	timer = f.opts.Clock.AfterFunc(delay, func() {
		f.mutex.Lock()
		if _, ok := f.timers[timer]; !ok || f.closed {
			f.mutex.Unlock()
			return
		}

		delete(f.timers, timer)
		reset()
		view := f.view()
		f.mutex.Unlock()

		f.notify(view)
	})

	f.timers[timer] = struct{}{}
}

func (f *Form) stopTimers() {
	for timer := range f.timers {
		timer.Stop()
	}

	f.timers = make(map[*clock.Timer]struct{})
}

func (f *Form) view() FormView {
	view := FormView{
		Amount:        f.amount,
		Status:        f.status,
		ErrorMessage:  f.errorMessage,
		CanSubmit:     f.canSubmit(),
		InputDisabled: f.status == StatusPending,
	}

	switch f.status {
	case StatusPending:
		view.ButtonLabel = LabelProcessing
		if f.flags.Hash != (common.Hash{}) {
			view.StatusMessage = PendingMessage
		}
	case StatusSuccess:
		view.ButtonLabel = LabelSuccess
		view.StatusMessage = SuccessMessage
	case StatusError:
		view.ButtonLabel = LabelMint
		view.StatusMessage = f.errorMessage
		if view.StatusMessage == "" {
			view.StatusMessage = FailureMessage
		}
	case StatusIdle:
		view.ButtonLabel = LabelMint
	}

	if f.status == StatusPending && f.flags.Hash != (common.Hash{}) {
		view.TxHash = f.flags.Hash.Hex()
		if f.opts.ExplorerTxURL != nil {
			view.ExplorerURL = f.opts.ExplorerTxURL(f.flags.Hash)
		}
	}

	return view
}

func (f *Form) notify(view FormView) {
	if f.opts.Observer != nil {
		f.opts.Observer(view)
	}
}
