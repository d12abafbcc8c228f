package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/haukened/dog/internal/dns/domain"
)

// JSONFormat renders the batch as one JSON document on a single stream,
// machine-readable and colour-free.
type JSONFormat struct {
	Out          io.Writer
	ErrOut       io.Writer
	ShowDuration bool
}

type jsonDocument struct {
	Responses []jsonResponse `json:"responses"`
}

type jsonResponse struct {
	Query      jsonQuery    `json:"query"`
	Server     string       `json:"server,omitempty"`
	Status     string       `json:"status,omitempty"`
	Answers    []jsonRecord `json:"answers,omitempty"`
	Authority  []jsonRecord `json:"authority,omitempty"`
	Additional []jsonRecord `json:"additional,omitempty"`
	EDNS       *jsonEDNS    `json:"edns,omitempty"`
	DurationMS int64        `json:"duration_ms,omitempty"`
	Warnings   []string     `json:"warnings,omitempty"`
	Error      string       `json:"error,omitempty"`
}

type jsonQuery struct {
	Name  string `json:"name"`
	Type  string `json:"type"`
	Class string `json:"class"`
}

type jsonRecord struct {
	Name  string `json:"name"`
	Type  string `json:"type"`
	Class string `json:"class"`
	TTL   uint32 `json:"ttl"`
	Data  string `json:"data"`
}

type jsonEDNS struct {
	Version     uint8  `json:"version"`
	PayloadSize uint16 `json:"udp_payload_size"`
	DNSSECOk    bool   `json:"dnssec_ok"`
}

// Print renders the whole batch as one document.
func (j *JSONFormat) Print(views []domain.ResponseView) bool {
	doc := jsonDocument{Responses: make([]jsonResponse, 0, len(views))}

	for _, v := range views {
		resp := jsonResponse{
			Query: jsonQuery{
				Name:  v.Question.Name.String(),
				Type:  v.Question.Type.String(),
				Class: v.Question.Class.String(),
			},
			Server:   v.Server,
			Warnings: v.Warnings,
		}
		if v.Err != nil {
			resp.Error = v.Err.Error()
		} else {
			resp.Status = v.RCode.String()
			resp.Answers = jsonRecords(v.Answers)
			resp.Authority = jsonRecords(v.Authority)
			resp.Additional = jsonRecords(v.Additional)
			if v.EDNS != nil {
				resp.EDNS = &jsonEDNS{
					Version:     v.EDNS.Version,
					PayloadSize: v.EDNS.PayloadSize,
					DNSSECOk:    v.EDNS.DNSSECOk,
				}
			}
			if j.ShowDuration {
				resp.DurationMS = v.Duration.Milliseconds()
			}
		}
		doc.Responses = append(doc.Responses, resp)
	}

	enc := json.NewEncoder(j.Out)
	if err := enc.Encode(doc); err != nil {
		fmt.Fprintf(j.ErrOut, "dog: writing JSON: %v\n", err)
	}
	return true
}

func jsonRecords(records []domain.ResourceRecord) []jsonRecord {
	out := make([]jsonRecord, 0, len(records))
	for _, rr := range records {
		data := ""
		if rr.Body != nil {
			data = rr.Body.String()
		}
		out = append(out, jsonRecord{
			Name:  rr.Name.String(),
			Type:  rr.Type.String(),
			Class: rr.Class.String(),
			TTL:   rr.TTL,
			Data:  data,
		})
	}
	return out
}
