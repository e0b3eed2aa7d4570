package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/recirculate/storefront/internal/checkout/domain"
	orderdomain "github.com/recirculate/storefront/internal/order/domain"
)

var (
	ErrNotAuthenticated = errors.New("no client is logged in")
	ErrEmptyCart        = errors.New("cart is empty")
	ErrCheckoutInFlight = errors.New("a checkout is already in progress")

	// The backend sometimes answers 2xx without the id the next step needs.
	ErrNoBillID  = errors.New("failed to generate invoice")
	ErrNoOrderID = errors.New("failed to generate order")
)

// Service sequences the place-order protocol: address, bill, order, then one
// order line per cart line. Steps 1–3 are strictly ordered because each feeds
// an id to the next; step 4 fans out since lines are independent.
//
// The backend runs no transaction across these calls and this client does not
// compensate: a failure mid-sequence leaves earlier rows behind on the
// server. What the client guarantees is narrower and is what the UI depends
// on — the cart is cleared only after every step succeeded, so a failed
// attempt can always be retried from unchanged local state.
type Service struct {
	cart     CartSource
	identity IdentitySource
	writer   OrderWriter

	stepTimeout time.Duration
	fanoutLimit int
	log         *slog.Logger
	now         func() time.Time

	inFlight atomic.Bool
}

type Options struct {
	// StepTimeout bounds each protocol step (the fan-out counts as one
	// step). Zero disables the per-step deadline.
	StepTimeout time.Duration
	// FanoutLimit caps concurrent order-line creations.
	FanoutLimit int
}

func NewService(cart CartSource, identity IdentitySource, writer OrderWriter, opts Options, log *slog.Logger) *Service {
	if opts.FanoutLimit <= 0 {
		opts.FanoutLimit = 10
	}
	if log == nil {
		log = slog.Default()
	}

	return &Service{
		cart:        cart,
		identity:    identity,
		writer:      writer,
		stepTimeout: opts.StepTimeout,
		fanoutLimit: opts.FanoutLimit,
		log:         log,
		now:         time.Now,
	}
}

// Place runs one checkout attempt. On any failure the cart is left untouched
// and no further steps are issued; on success the cart is cleared and the
// confirmation carries the new order id.
func (s *Service) Place(ctx context.Context, input domain.Input) (domain.Confirmation, error) {
	if !s.inFlight.CompareAndSwap(false, true) {
		return domain.Confirmation{}, ErrCheckoutInFlight
	}
	defer s.inFlight.Store(false)

	clientID, ok := s.identity.CurrentClientID()
	if !ok {
		return domain.Confirmation{}, ErrNotAuthenticated
	}

	lines := s.cart.Lines()
	if len(lines) == 0 {
		return domain.Confirmation{}, ErrEmptyCart
	}

	total := s.cart.Total()
	now := s.now()

	// Step 1: shipping address.
	err := s.step(ctx, func(ctx context.Context) error {
		_, err := s.writer.CreateAddress(ctx, orderdomain.AddressDraft{
			Street:   input.Street,
			Number:   input.Number,
			City:     input.City,
			ClientID: clientID,
		})
		return err
	})
	if err != nil {
		return domain.Confirmation{}, fmt.Errorf("create address: %w", err)
	}

	// Step 2: bill. The bill number only has to be locally unique.
	var bill orderdomain.Bill
	err = s.step(ctx, func(ctx context.Context) error {
		var err error
		bill, err = s.writer.CreateBill(ctx, orderdomain.BillDraft{
			BillNumber:  fmt.Sprintf("BILL-%d", now.UnixMilli()),
			Date:        now.Format("2006-01-02"),
			Total:       total,
			PaymentType: orderdomain.PaymentType(input.PaymentType),
			ClientID:    clientID,
		})
		return err
	})
	if err != nil {
		return domain.Confirmation{}, fmt.Errorf("create bill: %w", err)
	}
	if bill.IDKey == 0 {
		return domain.Confirmation{}, ErrNoBillID
	}

	// Step 3: the order itself, tied to the bill.
	var order orderdomain.Order
	err = s.step(ctx, func(ctx context.Context) error {
		var err error
		order, err = s.writer.CreateOrder(ctx, orderdomain.OrderDraft{
			Date:           now.Format(time.RFC3339),
			Total:          total,
			DeliveryMethod: orderdomain.HomeDelivery,
			Status:         orderdomain.StatusPending,
			ClientID:       clientID,
			BillID:         bill.IDKey,
		})
		return err
	})
	if err != nil {
		return domain.Confirmation{}, fmt.Errorf("create order: %w", err)
	}
	if order.IDKey == 0 {
		return domain.Confirmation{}, ErrNoOrderID
	}

	// Step 4: one order line per cart line, fanned out. Any rejection fails
	// the checkout; siblings already dispatched run to completion on their
	// own and are not reconciled.
	err = s.step(ctx, func(ctx context.Context) error {
		g, ctx := errgroup.WithContext(ctx)
		g.SetLimit(s.fanoutLimit)

		for _, line := range lines {
			line := line
			g.Go(func() error {
				_, err := s.writer.CreateOrderLine(ctx, orderdomain.LineDraft{
					Quantity:  line.Quantity,
					OrderID:   order.IDKey,
					ProductID: line.ProductID,
				})
				if err != nil {
					return fmt.Errorf("product %d: %w", line.ProductID, err)
				}
				return nil
			})
		}

		return g.Wait()
	})
	if err != nil {
		return domain.Confirmation{}, fmt.Errorf("create order lines: %w", err)
	}

	s.cart.Clear()
	s.log.Info("checkout completed",
		slog.Int("order_id", order.IDKey),
		slog.Int("bill_id", bill.IDKey),
		slog.Float64("total", total),
	)

	return domain.Confirmation{OrderID: order.IDKey, BillID: bill.IDKey, Total: total}, nil
}

func (s *Service) step(ctx context.Context, fn func(ctx context.Context) error) error {
	if s.stepTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.stepTimeout)
		defer cancel()
	}
	return fn(ctx)
}
