package notifier

import (
	"context"
	"errors"
	"net/smtp"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docuflota/internal/config"
	"docuflota/internal/model"
)

func testConfig() config.SMTPConfig {
	return config.SMTPConfig{
		Host: "smtp.example.com",
		Port: "587",
		From: "reports@example.com",
	}
}

func sampleReport() *model.Report {
	date := time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC)
	return &model.Report{
		ReportDate: date,
		Expired: []model.ReportRow{
			{
				DocumentName:   "Insurance policy",
				TypeName:       "Insurance",
				Category:       model.CategoryVehicle,
				VehicleName:    "Truck 7",
				ClientName:     "Acme Logistics",
				ExpirationDate: date.AddDate(0, 0, -3),
			},
		},
		Expiring7: []model.ReportRow{
			{
				DocumentName:   "Driver license",
				TypeName:       "License",
				Category:       model.CategoryPersonnel,
				PersonnelName:  "J. Diaz",
				ClientName:     "Acme Logistics",
				ExpirationDate: date.AddDate(0, 0, 5),
			},
		},
		Summary: model.ReportSummary{TotalExpired: 1, TotalExpiring7: 1, TotalTracked: 2},
	}
}

func TestNewEmailNotifier(t *testing.T) {
	t.Run("parses the embedded template", func(t *testing.T) {
		n, err := NewEmailNotifier(testConfig(), zerolog.Nop())
		assert.NoError(t, err)
		assert.NotNil(t, n)
	})

	t.Run("requires host", func(t *testing.T) {
		cfg := testConfig()
		cfg.Host = ""
		_, err := NewEmailNotifier(cfg, zerolog.Nop())
		assert.Error(t, err)
	})

	t.Run("requires from address", func(t *testing.T) {
		cfg := testConfig()
		cfg.From = ""
		_, err := NewEmailNotifier(cfg, zerolog.Nop())
		assert.Error(t, err)
	})
}

func TestEmailNotifier_SendReport(t *testing.T) {
	ctx := context.Background()

	t.Run("renders both owner kinds into the body", func(t *testing.T) {
		n, err := NewEmailNotifier(testConfig(), zerolog.Nop())
		require.NoError(t, err)

		var gotAddr, gotFrom string
		var gotTo []string
		var gotMsg []byte
		n.sendMail = func(addr string, a smtp.Auth, from string, to []string, msg []byte) error {
			gotAddr, gotFrom, gotTo, gotMsg = addr, from, to, msg
			return nil
		}

		err = n.SendReport(ctx, "admin@example.com", sampleReport())

		require.NoError(t, err)
		assert.Equal(t, "smtp.example.com:587", gotAddr)
		assert.Equal(t, "reports@example.com", gotFrom)
		assert.Equal(t, []string{"admin@example.com"}, gotTo)

		body := string(gotMsg)
		assert.Contains(t, body, "Subject: Fleet document report 2026-03-15")
		assert.Contains(t, body, "Insurance policy")
		assert.Contains(t, body, "Truck 7")
		assert.Contains(t, body, "J. Diaz")
		assert.Contains(t, body, "Acme Logistics")
	})

	t.Run("empty report still sends", func(t *testing.T) {
		n, err := NewEmailNotifier(testConfig(), zerolog.Nop())
		require.NoError(t, err)

		sent := false
		n.sendMail = func(string, smtp.Auth, string, []string, []byte) error {
			sent = true
			return nil
		}

		report := &model.Report{ReportDate: time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC)}
		assert.NoError(t, n.SendReport(ctx, "admin@example.com", report))
		assert.True(t, sent)
	})

	t.Run("missing recipient", func(t *testing.T) {
		n, err := NewEmailNotifier(testConfig(), zerolog.Nop())
		require.NoError(t, err)

		assert.Error(t, n.SendReport(ctx, "", sampleReport()))
	})

	t.Run("smtp failure is wrapped", func(t *testing.T) {
		n, err := NewEmailNotifier(testConfig(), zerolog.Nop())
		require.NoError(t, err)

		n.sendMail = func(string, smtp.Auth, string, []string, []byte) error {
			return errors.New("connection refused")
		}

		err = n.SendReport(ctx, "admin@example.com", sampleReport())
		assert.ErrorContains(t, err, "send report email")
	})
}
