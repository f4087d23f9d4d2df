package database

import (
	"context"
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseConfigSkipsCertificateVerification(t *testing.T) {
	cfg, err := ParseConfig("postgres://u:p@db.example.com:5432/produtos?sslmode=verify-full", Options{
		MaxConns:      7,
		MinConns:      2,
		TLSSkipVerify: true,
	})
	require.NoError(t, err)

	require.Equal(t, int32(7), cfg.MaxConns)
	require.Equal(t, int32(2), cfg.MinConns)
	require.NotNil(t, cfg.ConnConfig.TLSConfig)
	require.True(t, cfg.ConnConfig.TLSConfig.InsecureSkipVerify)
	require.Nil(t, cfg.ConnConfig.TLSConfig.VerifyPeerCertificate)
}

func TestParseConfigKeepsVerificationWhenDisabled(t *testing.T) {
	cfg, err := ParseConfig("postgres://u:p@db.example.com:5432/produtos?sslmode=verify-full", Options{MaxConns: 3})
	require.NoError(t, err)

	require.NotNil(t, cfg.ConnConfig.TLSConfig)
	require.False(t, cfg.ConnConfig.TLSConfig.InsecureSkipVerify)
}

func TestParseConfigPlaintext(t *testing.T) {
	cfg, err := ParseConfig("postgres://u:p@localhost:5432/produtos?sslmode=disable", Options{TLSSkipVerify: true})
	require.NoError(t, err)
	require.Nil(t, cfg.ConnConfig.TLSConfig)
}

func TestParseConfigInvalidURL(t *testing.T) {
	_, err := ParseConfig("postgres://bad url:%%", Options{})
	require.ErrorContains(t, err, "parse database URL")
}

func TestEmbeddedMigrations(t *testing.T) {
	entries, err := fs.ReadDir(migrations, migrationsDir)
	require.NoError(t, err)
	require.NotEmpty(t, entries)

	body, err := fs.ReadFile(migrations, migrationsDir+"/"+entries[0].Name())
	require.NoError(t, err)
	sql := string(body)
	require.True(t, strings.Contains(sql, "-- +goose Up"))
	require.Contains(t, sql, "CREATE TABLE IF NOT EXISTS usuario")
	require.Contains(t, sql, "CREATE TABLE IF NOT EXISTS produto")
}

func TestMigrateWithoutPool(t *testing.T) {
	var db *DB
	require.Error(t, db.Migrate(context.Background()))
}
