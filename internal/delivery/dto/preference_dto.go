package dto

import "encoding/json"

type PreferenceResponse struct {
	Key   string          `json:"key"`
	Value json.RawMessage `json:"value"`
}
