package demofolio

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/PaesslerAG/jsonpath"
)

// this file parses the link payload format: the JSON document a fake
// aggregator hands back when the user "links" an institution.

/*
	{
	    "institution": {
	        "id": "chase",
	        "name": "Chase",
	        "logo": "logos/chase.svg",
	        "color": "#117ACA"
	    },
	    "accounts": [
	        {
	            "id": "chase-checking-1",
	            "name": "Total Checking",
	            "kind": "checking",
	            "mask": "4021",
	            "balance": 2310.55,
	            "currency": "USD"
	        }
	    ]
	}
*/

// ParseLinkPayload reads a link payload from 'r' and returns the institution
// and account descriptors it declares. Balance and currency are optional per
// account; absent values are synthesized at upsert time.
func ParseLinkPayload(r io.Reader) (InstitutionDescriptor, []AccountDescriptor, error) {
	var inst InstitutionDescriptor

	data, err := io.ReadAll(r)
	if err != nil {
		return inst, nil, fmt.Errorf("cannot read link payload: %w", err)
	}
	var jobj any
	if err := json.Unmarshal(data, &jobj); err != nil {
		return inst, nil, fmt.Errorf("cannot parse link payload: %w", err)
	}

	inst.ExternalID, err = jstring(jobj, "$.institution.id")
	if err != nil {
		return inst, nil, err
	}
	inst.Name, err = jstring(jobj, "$.institution.name")
	if err != nil {
		return inst, nil, err
	}
	// logo and color are cosmetic, absence is fine.
	inst.LogoRef, _ = jstring(jobj, "$.institution.logo")
	inst.BrandColorHex, _ = jstring(jobj, "$.institution.color")

	jaccounts, err := jsonpath.Get("$.accounts[*]", jobj)
	if err != nil {
		return inst, nil, fmt.Errorf("link payload has no accounts: %w", err)
	}
	jlist, ok := jaccounts.([]any)
	if !ok {
		return inst, nil, fmt.Errorf("link payload accounts is not a list")
	}

	var accounts []AccountDescriptor
	for i, ja := range jlist {
		var a AccountDescriptor
		a.ExternalID, err = jstring(ja, "$.id")
		if err != nil {
			return inst, nil, fmt.Errorf("account %d: %w", i, err)
		}
		a.DisplayName, err = jstring(ja, "$.name")
		if err != nil {
			return inst, nil, fmt.Errorf("account %d: %w", i, err)
		}
		kind, err := jstring(ja, "$.kind")
		if err != nil {
			return inst, nil, fmt.Errorf("account %d: %w", i, err)
		}
		a.Kind, err = ParseAccountKind(kind)
		if err != nil {
			return inst, nil, fmt.Errorf("account %d: %w", i, err)
		}
		a.MaskedNumber, _ = jstring(ja, "$.mask")
		a.CurrencyCode, _ = jstring(ja, "$.currency")
		if a.CurrencyCode == "" {
			a.CurrencyCode = seedCurrency
		}
		if jval, err := jsonpath.Get("$.balance", ja); err == nil {
			if val, ok := jval.(float64); ok {
				m := M(val, a.CurrencyCode)
				a.Balance = &m
			}
		}
		accounts = append(accounts, a)
	}
	if len(accounts) == 0 {
		return inst, nil, fmt.Errorf("link payload declares no accounts")
	}
	return inst, accounts, nil
}

// jstring resolves a jsonpath expected to hold a single string.
func jstring(jobj any, path string) (string, error) {
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return "", fmt.Errorf("link payload is missing %q: %w", path, err)
	}
	// jsonpath sometimes wraps a single answer in a list, keep the first one.
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	s, ok := jval.(string)
	if !ok || s == "" {
		return "", fmt.Errorf("link payload value at %q is not a string", path)
	}
	return s, nil
}
