// intent-probe classifies a line of text and prints the routing decision
// plus any extracted slots or deletion criteria as JSON. Debugging aid:
//
//	intent-probe "Monday 9-11am and Wednesday 6-8pm"
//	echo "clear my schedule" | intent-probe
package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"schedbot/internal/domain"
	"schedbot/internal/intent"
	"schedbot/internal/timeparse"
)

type probeOutput struct {
	Text             string                   `json:"text"`
	Result           domain.IntentResult      `json:"result"`
	Slots            []domain.TimeSlot        `json:"slots,omitempty"`
	DeletionCriteria *domain.DeletionCriteria `json:"deletion_criteria,omitempty"`
	FullClear        bool                     `json:"full_clear,omitempty"`
}

func main() {
	if len(os.Args) > 1 {
		probe(strings.Join(os.Args[1:], " "))
		return
	}

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		probe(line)
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintln(os.Stderr, "read stdin:", err)
		os.Exit(1)
	}
}

func probe(text string) {
	out := probeOutput{
		Text:   text,
		Result: intent.Classify(text, nil),
	}

	switch out.Result.Label {
	case domain.IntentAvailabilityUpdate:
		out.Slots = timeparse.ExtractSlots(text)
	case domain.IntentAvailabilityDeletion, domain.IntentSessionCancellation:
		if crit, ok := timeparse.ExtractDeletionCriteria(text); ok {
			out.DeletionCriteria = &crit
		}
		out.FullClear = intent.RequestsFullClear(text)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(out)
}
