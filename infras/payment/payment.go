package payment

//go:generate go run go.uber.org/mock/mockgen -source=./payment.go -destination=./mocks/payment_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"

	"hostconnect/config"
	"hostconnect/infras/otel"
	"hostconnect/shared/constant"
)

const (
	// PaymentStatusPaid is the provider-side status a session must reach
	// before a booking may be confirmed.
	PaymentStatusPaid = "paid"
)

var (
	// ErrNotConfigured is returned when no provider credential is present.
	ErrNotConfigured = errors.New("payment provider secret key is not configured")
)

// CheckoutSession is the provider-neutral view of a hosted payment session.
type CheckoutSession struct {
	ID            string
	URL           string
	PaymentStatus string
	Metadata      map[string]string
}

// CreateSessionInput describes the single line item checkout the booking flow opens.
type CreateSessionInput struct {
	AmountMinorUnits   int64
	Currency           string
	ProductName        string
	ProductDescription string
	CustomerEmail      string
	SuccessURL         string
	CancelURL          string
	Metadata           map[string]string
}

type Gateway interface {
	CreateCheckoutSession(ctx context.Context, in CreateSessionInput) (CheckoutSession, error)
	GetCheckoutSession(ctx context.Context, sessionID string) (CheckoutSession, error)
}

type stripeGateway struct {
	api  *client.API
	otel otel.Otel
}

func New(cfg *config.Config, otl otel.Otel) Gateway {
	secretKey := cfg.External.Stripe.SecretKey
	if secretKey == constant.Empty {
		log.Warn().Msg("Stripe secret key is not configured, checkout is disabled")

		return &stripeGateway{otel: otl}
	}

	api := &client.API{}
	api.Init(secretKey, nil)

	log.Info().Msg("Stripe client initialized")

	return &stripeGateway{
		api:  api,
		otel: otl,
	}
}

func (g *stripeGateway) CreateCheckoutSession(ctx context.Context, in CreateSessionInput) (res CheckoutSession, err error) {
	ctx, scope := g.otel.NewScope(ctx, constant.OtelPaymentScopeName, constant.OtelPaymentScopeName+".CreateCheckoutSession")
	defer scope.End()
	defer scope.TraceIfError(err)

	if g.api == nil {
		return res, ErrNotConfigured
	}

	params := &stripe.CheckoutSessionParams{
		Mode:          stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL:    stripe.String(in.SuccessURL),
		CancelURL:     stripe.String(in.CancelURL),
		CustomerEmail: stripe.String(in.CustomerEmail),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				Quantity: stripe.Int64(1),
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency:   stripe.String(in.Currency),
					UnitAmount: stripe.Int64(in.AmountMinorUnits),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name:        stripe.String(in.ProductName),
						Description: stripe.String(in.ProductDescription),
					},
				},
			},
		},
	}
	params.Context = ctx

	for key, value := range in.Metadata {
		params.AddMetadata(key, value)
	}

	session, err := g.api.CheckoutSessions.New(params)
	if err != nil {
		log.Error().Err(err).Msg("failed to create checkout session with provider")

		return res, fmt.Errorf("failed to create checkout session: %w", err)
	}

	scope.SetAttribute("payment.session_id", session.ID)

	return fromStripeSession(session), nil
}

func (g *stripeGateway) GetCheckoutSession(ctx context.Context, sessionID string) (res CheckoutSession, err error) {
	ctx, scope := g.otel.NewScope(ctx, constant.OtelPaymentScopeName, constant.OtelPaymentScopeName+".GetCheckoutSession")
	defer scope.End()
	defer scope.TraceIfError(err)

	if g.api == nil {
		return res, ErrNotConfigured
	}

	scope.SetAttribute("payment.session_id", sessionID)

	params := &stripe.CheckoutSessionParams{}
	params.Context = ctx

	session, err := g.api.CheckoutSessions.Get(sessionID, params)
	if err != nil {
		log.Error().Err(err).Str("sessionID", sessionID).Msg("failed to retrieve checkout session from provider")

		return res, fmt.Errorf("failed to retrieve checkout session: %w", err)
	}

	return fromStripeSession(session), nil
}

func fromStripeSession(session *stripe.CheckoutSession) CheckoutSession {
	return CheckoutSession{
		ID:            session.ID,
		URL:           session.URL,
		PaymentStatus: string(session.PaymentStatus),
		Metadata:      session.Metadata,
	}
}
