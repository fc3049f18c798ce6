package payments

import (
	"context"
	"fmt"

	mpconfig "github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/preference"

	"github.com/UnTrende/luxx-sub002/internal/models"
)

// Checkout cria preferences do Mercado Pago para cobrança de agendamentos.
// Token ausente desliga o recurso (receiver nil).
type Checkout struct {
	pref preference.Client
}

func NewCheckout(accessToken string) (*Checkout, error) {
	if accessToken == "" {
		return nil, nil
	}

	cfg, err := mpconfig.New(accessToken)
	if err != nil {
		return nil, fmt.Errorf("mercadopago config: %w", err)
	}

	return &Checkout{pref: preference.NewClient(cfg)}, nil
}

func (c *Checkout) Enabled() bool {
	return c != nil
}

// CreatePreference devolve (preferenceID, initPoint).
func (c *Checkout) CreatePreference(
	ctx context.Context,
	b *models.Booking,
	title string,
	amount float64,
) (string, string, error) {

	req := preference.Request{
		ExternalReference: b.Reference,
		Items: []preference.ItemRequest{
			{
				ID:        fmt.Sprint(b.ID),
				Title:     title,
				Quantity:  1,
				UnitPrice: amount,
			},
		},
	}

	resource, err := c.pref.Create(ctx, req)
	if err != nil {
		return "", "", fmt.Errorf("mercadopago preference: %w", err)
	}

	return resource.ID, resource.InitPoint, nil
}
