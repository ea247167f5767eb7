package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPayInstallment(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/financiamentos/7/parcelas/101/pagar", r.URL.Path)

		var p Payment
		require.NoError(t, json.NewDecoder(r.Body).Decode(&p))
		assert.Equal(t, 1050.0, p.PaidAmount)
		assert.Equal(t, 50.0, p.Interest)

		paid := "2024-02-15"
		writeJSON(w, http.StatusOK, Financing{
			ID:        7,
			Version:   5,
			PaidCount: 1,
			Installments: []Installment{
				{ID: 101, Status: "Pago", PaidAmount: 1050, Interest: 50, PaymentDate: &paid},
			},
		})
	}))
	defer srv.Close()

	c := New(srv.URL, WithSession(Session{Token: "tok-1"}))
	f, err := c.PayInstallment(context.Background(), 7, 101, Payment{PaidAmount: 1050, Interest: 50, PaymentDate: "2024-02-15"})
	require.NoError(t, err)
	assert.Equal(t, int32(5), f.Version)
	assert.Equal(t, "Pago", f.Installments[0].Status)
}

func TestPresentValue(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/financiamentos/7/valor-presente":
			assert.Equal(t, "true", r.URL.Query().Get("usar_cdi"))
			assert.Equal(t, "2024-06-01", r.URL.Query().Get("data_referencia"))
			writeJSON(w, http.StatusOK, PresentValue{PresentValue: 8712.34, RemainingCount: 3, RateSource: "CDI"})
		default:
			assert.Equal(t, "false", r.URL.Query().Get("usar_cdi"))
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte("null"))
		}
	}))
	defer srv.Close()
	c := New(srv.URL, WithSession(Session{Token: "tok-1"}))
	ctx := context.Background()

	t.Run("Remaining", func(t *testing.T) {
		pv, err := c.PresentValue(ctx, 7, true, "2024-06-01")
		require.NoError(t, err)
		require.NotNil(t, pv)
		assert.Equal(t, 8712.34, pv.PresentValue)
		assert.Equal(t, "CDI", pv.RateSource)
	})

	t.Run("NothingRemaining", func(t *testing.T) {
		pv, err := c.PresentValue(ctx, 9, false, "")
		require.NoError(t, err)
		assert.Nil(t, pv)
	})
}

func TestSettleAccount(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/contas-receber/4/marcar-recebida", r.URL.Path)
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "2024-06-10", body["data_pagamento"])
		paid := "2024-06-10"
		writeJSON(w, http.StatusOK, Account{ID: 4, Kind: Receivable, Status: "Pago", PaymentDate: &paid})
	}))
	defer srv.Close()

	c := New(srv.URL, WithSession(Session{Token: "tok-1"}))
	a, err := c.SettleAccount(context.Background(), Receivable, 4, "2024-06-10")
	require.NoError(t, err)
	assert.Equal(t, "Pago", a.Status)

	_, err = c.SettleAccount(context.Background(), "outro", 4, "")
	assert.ErrorContains(t, err, "unknown account kind")
}
