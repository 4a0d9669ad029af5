// Package plaid wraps the Plaid API client behind the narrow surface the
// service needs: link-token issuance, public-token exchange, and
// transaction/account retrieval mapped onto internal models.
package plaid

import (
	"context"
	"fmt"
	"time"

	"github.com/plaid/plaid-go/v41/plaid"

	"ecofinance-server/src/models"
)

const transactionsPageSize = 500

// Client is the configured Plaid API client plus the display name shown in
// the Link flow.
type Client struct {
	api        *plaid.APIClient
	clientName string
}

func NewClient(clientID, secret, env, clientName string) (*Client, error) {
	configuration := plaid.NewConfiguration()
	configuration.AddDefaultHeader("PLAID-CLIENT-ID", clientID)
	configuration.AddDefaultHeader("PLAID-SECRET", secret)

	switch env {
	case "sandbox":
		configuration.UseEnvironment(plaid.Sandbox)
	case "production":
		configuration.UseEnvironment(plaid.Production)
	default:
		return nil, fmt.Errorf("invalid plaid environment: %s", env)
	}

	return &Client{api: plaid.NewAPIClient(configuration), clientName: clientName}, nil
}

// CreateLinkToken issues a Link token for the transactions product, limited
// to depository checking/savings accounts.
func (c *Client) CreateLinkToken(ctx context.Context, clientUserID string) (linkToken string, expiration time.Time, err error) {
	user := plaid.LinkTokenCreateRequestUser{
		ClientUserId: clientUserID,
	}
	request := plaid.NewLinkTokenCreateRequest(
		c.clientName,
		"en",
		[]plaid.CountryCode{plaid.COUNTRYCODE_US},
	)
	request.SetUser(user)
	request.SetProducts([]plaid.Products{plaid.PRODUCTS_TRANSACTIONS})
	request.SetAccountFilters(plaid.LinkTokenAccountFilters{
		Depository: &plaid.DepositoryFilter{
			AccountSubtypes: []plaid.DepositoryAccountSubtype{
				plaid.DEPOSITORYACCOUNTSUBTYPE_CHECKING,
				plaid.DEPOSITORYACCOUNTSUBTYPE_SAVINGS,
			},
		},
	})

	resp, _, err := c.api.PlaidApi.LinkTokenCreate(ctx).LinkTokenCreateRequest(*request).Execute()
	if err != nil {
		return "", time.Time{}, fmt.Errorf("plaid link token create: %w", err)
	}
	return resp.GetLinkToken(), resp.GetExpiration(), nil
}

// ExchangePublicToken trades the public token from a completed Link flow for
// an access token and item id.
func (c *Client) ExchangePublicToken(ctx context.Context, publicToken string) (accessToken, itemID string, err error) {
	request := plaid.NewItemPublicTokenExchangeRequest(publicToken)
	resp, _, err := c.api.PlaidApi.ItemPublicTokenExchange(ctx).ItemPublicTokenExchangeRequest(*request).Execute()
	if err != nil {
		return "", "", fmt.Errorf("plaid public token exchange: %w", err)
	}
	return resp.GetAccessToken(), resp.GetItemId(), nil
}

// FetchTransactions retrieves all transactions in [start, end], paging until
// the reported total is reached, with personal finance categories included.
func (c *Client) FetchTransactions(ctx context.Context, accessToken string, start, end time.Time) ([]models.Transaction, error) {
	var out []models.Transaction

	for {
		request := plaid.NewTransactionsGetRequest(
			accessToken,
			start.Format("2006-01-02"),
			end.Format("2006-01-02"),
		)
		options := plaid.NewTransactionsGetRequestOptions()
		options.SetIncludePersonalFinanceCategory(true)
		options.SetCount(transactionsPageSize)
		options.SetOffset(int32(len(out)))
		request.SetOptions(*options)

		resp, _, err := c.api.PlaidApi.TransactionsGet(ctx).TransactionsGetRequest(*request).Execute()
		if err != nil {
			return nil, fmt.Errorf("plaid transactions get: %w", err)
		}

		for _, tx := range resp.GetTransactions() {
			out = append(out, mapTransaction(tx))
		}

		if int32(len(out)) >= resp.GetTotalTransactions() || len(resp.GetTransactions()) == 0 {
			return out, nil
		}
	}
}

// FetchAccounts retrieves the item's accounts with current balances.
func (c *Client) FetchAccounts(ctx context.Context, accessToken string) ([]models.Account, error) {
	request := plaid.NewAccountsGetRequest(accessToken)
	resp, _, err := c.api.PlaidApi.AccountsGet(ctx).AccountsGetRequest(*request).Execute()
	if err != nil {
		return nil, fmt.Errorf("plaid accounts get: %w", err)
	}

	accounts := make([]models.Account, 0, len(resp.GetAccounts()))
	for _, a := range resp.GetAccounts() {
		balances := a.GetBalances()
		accounts = append(accounts, models.Account{
			AccountID:        a.GetAccountId(),
			Name:             a.GetName(),
			OfficialName:     a.GetOfficialName(),
			Mask:             a.GetMask(),
			Type:             string(a.GetType()),
			Subtype:          string(a.GetSubtype()),
			CurrentBalance:   balances.GetCurrent(),
			AvailableBalance: balances.GetAvailable(),
		})
	}
	return accounts, nil
}

func mapTransaction(tx plaid.Transaction) models.Transaction {
	date, _ := time.Parse("2006-01-02", tx.GetDate())
	pfc := tx.GetPersonalFinanceCategory()
	return models.Transaction{
		ID:           tx.GetTransactionId(),
		AccountID:    tx.GetAccountId(),
		Amount:       tx.GetAmount(),
		Name:         tx.GetName(),
		MerchantName: tx.GetMerchantName(),
		Date:         date,
		Category:     pfc.GetPrimary(),
	}
}
