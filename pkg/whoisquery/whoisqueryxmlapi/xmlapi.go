// whoisxmlapi.com backend. HTTP + JSON, so it handles ccTLDs whose raw
// WHOIS output the TCP path parses poorly.
package whoisqueryxmlapi

import (
	"context"
	"fmt"
	"time"

	"github.com/function61/domainscout/pkg/whoisquery"
	"github.com/function61/gokit/ezhttp"
)

func New(apiKey string) whoisquery.Service {
	return &xmlApi{apiKey}
}

type xmlApi struct {
	apiKey string
}

func (x *xmlApi) Lookup(ctx context.Context, domain string) (*whoisquery.Record, error) {
	// responses routinely last > 10 s
	ctx, cancel := context.WithTimeout(ctx, 20*time.Second)
	defer cancel()

	endpoint := fmt.Sprintf(
		"https://www.whoisxmlapi.com/whoisserver/WhoisService?apiKey=%s&domainName=%s&outputFormat=JSON",
		x.apiKey,
		domain)

	result := &apiResponse{}
	if _, err := ezhttp.Get(
		ctx,
		endpoint,
		ezhttp.RespondsJson(result, true),
	); err != nil {
		return nil, &whoisquery.LookupError{
			Kind:    whoisquery.KindGeneric,
			Message: fmt.Sprintf("whoisxmlapi: %v", err),
		}
	}

	if msg := result.ErrorMessage.Msg; msg != "" {
		// the API reports "no such domain" inside a 200 response
		return nil, &whoisquery.LookupError{
			Kind:    whoisquery.KindNoRecord,
			Message: msg,
		}
	}

	normalized := normalize(*result)

	return &normalized, nil
}

type apiResponse struct {
	Record struct {
		Domain       string `json:"domainName"`
		Registrar    string `json:"registrarName"`
		Status       string `json:"status"`
		RegistryData struct {
			Created     string `json:"createdDateNormalized"`
			Expires     string `json:"expiresDateNormalized"`
			Status      string `json:"status"`
			NameServers struct {
				HostNames []string `json:"hostNames"`
			} `json:"nameServers"`
		} `json:"registryData"`
	} `json:"WhoisRecord"`
	ErrorMessage struct {
		Msg string `json:"msg"`
	} `json:"ErrorMessage"`
}

func normalize(resp apiResponse) whoisquery.Record {
	record := resp.Record

	status := record.Status
	if status == "" {
		status = record.RegistryData.Status
	}

	return whoisquery.Record{
		DomainName:  record.Domain,
		Registrar:   record.Registrar,
		Created:     whoisquery.Single(record.RegistryData.Created),
		Expires:     whoisquery.Single(record.RegistryData.Expires),
		NameServers: whoisquery.Multiple(record.RegistryData.NameServers.HostNames),
		Statuses:    whoisquery.Single(status),
	}
}
