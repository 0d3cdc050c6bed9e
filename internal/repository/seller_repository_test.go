package repository_test

import (
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/apnadairy/internal/domain"
	"github.com/nikolayk812/apnadairy/internal/port"
	"github.com/nikolayk812/apnadairy/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type sellerRepositorySuite struct {
	suite.Suite

	repo port.SellerRepository
	pool *pgxpool.Pool
}

// entry point to run the tests in the suite
func TestSellerRepositorySuite(t *testing.T) {
	suite.Run(t, new(sellerRepositorySuite))
}

// before all tests in the suite
func (suite *sellerRepositorySuite) SetupSuite() {
	ctx := suite.T().Context()

	_, connStr, err := startPostgres(ctx)
	suite.NoError(err)

	suite.pool, err = pgxpool.New(ctx, connStr)
	suite.NoError(err)

	suite.repo, err = repository.NewSeller(suite.pool)
	suite.NoError(err)
}

// after all tests in the suite
func (suite *sellerRepositorySuite) TearDownSuite() {
	if suite.pool != nil {
		suite.pool.Close()
	}
}

func (suite *sellerRepositorySuite) TestCreateSeller() {
	defer suite.deleteAll()

	tests := []struct {
		name      string
		seller    domain.SellerProfile
		wantError string
	}{
		{
			name:   "create seller: ok",
			seller: randomSeller(),
		},
		{
			name: "create seller with zero id: error",
			seller: func() domain.SellerProfile {
				s := randomSeller()
				s.ID = uuid.Nil
				return s
			}(),
			wantError: "seller id is empty",
		},
		{
			name: "create seller without email: error",
			seller: func() domain.SellerProfile {
				s := randomSeller()
				s.Email = ""
				return s
			}(),
			wantError: "seller profile is incomplete",
		},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			t := suite.T()
			ctx := t.Context()

			err := suite.repo.CreateSeller(ctx, tt.seller)
			if tt.wantError != "" {
				require.EqualError(t, err, tt.wantError)
				return
			}
			require.NoError(t, err)

			stored, err := suite.repo.GetSeller(ctx, tt.seller.ID)
			require.NoError(t, err)

			diff := cmp.Diff(tt.seller, stored)
			assert.Empty(t, diff)
		})
	}
}

func (suite *sellerRepositorySuite) TestGetSellers() {
	defer suite.deleteAll()

	t := suite.T()
	ctx := t.Context()

	suite.Run("missing seller: not found", func() {
		_, err := suite.repo.GetSeller(ctx, uuid.MustParse(gofakeit.UUID()))
		require.ErrorIs(t, err, domain.ErrNotFound)
	})

	older := randomSeller()
	older.CreatedAt = older.CreatedAt.Add(-time.Hour)
	newer := randomSeller()

	require.NoError(t, suite.repo.CreateSeller(ctx, older))
	require.NoError(t, suite.repo.CreateSeller(ctx, newer))

	sellers, err := suite.repo.GetSellers(ctx)
	require.NoError(t, err)
	require.Len(t, sellers, 2)

	// newest first
	diff := cmp.Diff([]domain.SellerProfile{newer, older}, sellers)
	assert.Empty(t, diff)
}

func (suite *sellerRepositorySuite) deleteAll() {
	_, err := suite.pool.Exec(suite.T().Context(), "TRUNCATE TABLE sellers CASCADE")
	suite.NoError(err)
}
