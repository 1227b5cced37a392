package party

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/osse101/GranblueTeam_Go/internal/domain"
)

// issuedKey is what the backend hands back for a newly created anonymous party
type issuedKey struct {
	PartyID string
	EditKey string
}

// takeEditKey removes edit_key from a party response so it never reaches the
// browser, returning the cleaned body and the key it held.
// The party may sit under a "party" envelope or at the root.
func takeEditKey(body []byte) ([]byte, issuedKey, error) {
	if len(bytes.TrimSpace(body)) == 0 {
		return body, issuedKey{}, nil
	}

	var root map[string]json.RawMessage
	if err := json.Unmarshal(body, &root); err != nil {
		return nil, issuedKey{}, fmt.Errorf("%w: %v", domain.ErrInvalidUpstream, err)
	}

	target := root
	var envelope map[string]json.RawMessage
	if raw, ok := root[fieldParty]; ok {
		if err := json.Unmarshal(raw, &envelope); err == nil && envelope != nil {
			target = envelope
		}
	}

	var issued issuedKey
	if raw, ok := target[fieldID]; ok {
		issued.PartyID = stringValue(raw)
	}
	raw, ok := target[fieldEditKey]
	if !ok {
		return body, issued, nil
	}
	issued.EditKey = stringValue(raw)
	delete(target, fieldEditKey)

	if envelope != nil {
		encoded, err := json.Marshal(envelope)
		if err != nil {
			return nil, issuedKey{}, err
		}
		root[fieldParty] = encoded
	}
	cleaned, err := json.Marshal(root)
	if err != nil {
		return nil, issuedKey{}, err
	}
	return cleaned, issued, nil
}

// withLocalID sets party.local_id on a request body when the caller did not
func withLocalID(body []byte, localID string) ([]byte, error) {
	if localID == "" || len(body) == 0 {
		return body, nil
	}

	var root map[string]json.RawMessage
	if err := json.Unmarshal(body, &root); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	var party map[string]json.RawMessage
	if err := json.Unmarshal(root[fieldParty], &party); err != nil || party == nil {
		party = make(map[string]json.RawMessage)
	}
	if existing, ok := party[fieldLocalID]; ok && stringValue(existing) != "" {
		return body, nil
	}

	encodedID, err := json.Marshal(localID)
	if err != nil {
		return nil, err
	}
	party[fieldLocalID] = encodedID

	encodedParty, err := json.Marshal(party)
	if err != nil {
		return nil, err
	}
	root[fieldParty] = encodedParty
	return json.Marshal(root)
}

func stringValue(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}
	return s
}
