package report

import (
	"fmt"
	"io"
	"sort"

	"github.com/mikhailocampo/rift-rewind-hackathon/internal/models"
)

// sampleFrameIndex and sampleEventFrameIndex pick the frames used for the
// detail sections. Early frames are mostly empty, so the samples sit a few
// minutes into the game when one exists.
const (
	sampleFrameIndex      = 5
	sampleEventFrameIndex = 10
	sampleEventCount      = 5
)

// Timeline writes the match-timeline inspection report: bounded structure,
// frame statistics, event-type distribution, and sample frame/event detail.
func Timeline(w io.Writer, doc models.Document, source string) error {
	banner(w, "Analyzing: "+source)
	if err := structureSection(w, doc.Root); err != nil {
		return err
	}

	fmt.Fprintf(w, "\n\nKEY STATISTICS:\n")
	obj, err := rootObject(doc)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Top-level keys: %s\n", keyList(obj.Keys()))

	info, ok := childObject(obj, "info")
	if !ok {
		return nil
	}
	fmt.Fprintf(w, "\nInfo keys: %s\n", keyList(info.Keys()))

	if interval, ok := childNumber(info, "frameInterval"); ok {
		fmt.Fprintf(w, "  frameInterval: %sms\n", interval.String())
	}

	frames, ok := childArray(info, "frames")
	if !ok {
		return nil
	}
	fmt.Fprintf(w, "  - Number of frames: %d\n", len(frames))
	if len(frames) > 0 {
		frameStatistics(w, frames)
	}

	participantMapping(w, info)
	frameDetail(w, frames)
	sampleEvents(w, frames)
	return nil
}

func frameStatistics(w io.Writer, frames models.JSONArray) {
	first, ok := frames[0].(*models.JSONObject)
	if !ok {
		return
	}
	fmt.Fprintf(w, "  - Frame keys (first frame): %s\n", keyList(first.Keys()))

	events, ok := childArray(first, "events")
	if !ok {
		return
	}
	fmt.Fprintf(w, "    - Events in first frame: %d\n", len(events))
	if len(events) > 0 {
		if ev, ok := events[0].(*models.JSONObject); ok {
			fmt.Fprintf(w, "    - Event keys (first event): %s\n", keyList(ev.Keys()))
		}
	}

	eventDistribution(w, frames)
}

// eventDistribution counts event types across every frame and prints them
// by descending count, ties broken by name so the output is deterministic.
func eventDistribution(w io.Writer, frames models.JSONArray) {
	counts := make(map[string]int)
	for _, f := range frames {
		frame, ok := f.(*models.JSONObject)
		if !ok {
			continue
		}
		events, ok := childArray(frame, "events")
		if !ok {
			continue
		}
		for _, e := range events {
			event, ok := e.(*models.JSONObject)
			if !ok {
				continue
			}
			eventType := "UNKNOWN"
			if v, ok := event.Get("type"); ok {
				if s, ok := v.(string); ok {
					eventType = s
				}
			}
			counts[eventType]++
		}
	}
	if len(counts) == 0 {
		return
	}

	type typeCount struct {
		name  string
		count int
	}
	dist := make([]typeCount, 0, len(counts))
	for name, count := range counts {
		dist = append(dist, typeCount{name, count})
	}
	sort.Slice(dist, func(i, j int) bool {
		if dist[i].count != dist[j].count {
			return dist[i].count > dist[j].count
		}
		return dist[i].name < dist[j].name
	})

	fmt.Fprintf(w, "\n  - Event type distribution:\n")
	for _, tc := range dist {
		fmt.Fprintf(w, "    %s: %d\n", tc.name, tc.count)
	}
}

func participantMapping(w io.Writer, info *models.JSONObject) {
	participants, ok := childArray(info, "participants")
	if !ok || len(participants) == 0 {
		return
	}
	fmt.Fprintf(w, "\nPARTICIPANTS MAPPING:\n")
	for _, p := range firstItems(participants, 3) {
		participant, ok := p.(*models.JSONObject)
		if !ok {
			continue
		}
		id, _ := participant.Get("participantId")
		puuid, _ := participant.Get("puuid")
		fmt.Fprintf(w, "  participantId %s: %s\n", formatValue(id), formatValue(puuid))
	}
}

func frameDetail(w io.Writer, frames models.JSONArray) {
	frame, idx, ok := pickFrame(frames, sampleFrameIndex)
	if !ok {
		return
	}
	fmt.Fprintf(w, "\nFRAME STRUCTURE (Frame %d):\n", idx)
	if ts, ok := childNumber(frame, "timestamp"); ok {
		fmt.Fprintf(w, "  timestamp: %sms\n", ts.String())
	}
	if events, ok := childArray(frame, "events"); ok {
		fmt.Fprintf(w, "  events: %d events\n", len(events))
	}

	pframes, ok := childObject(frame, "participantFrames")
	if !ok {
		return
	}
	pf, ok := childObject(pframes, "1")
	if !ok {
		return
	}
	fmt.Fprintf(w, "\nPARTICIPANT FRAME DATA (Participant 1, Frame %d):\n", idx)
	if stats, ok := childObject(pf, "championStats"); ok {
		fmt.Fprintf(w, "  championStats:\n")
		for _, m := range stats.Members() {
			fmt.Fprintf(w, "    %s: %s\n", m.Key, formatValue(m.Value))
		}
	}
	for _, field := range []string{"currentGold", "goldPerSecond", "level", "position", "totalGold", "xp"} {
		printField(w, "  ", pf, field)
	}
}

func sampleEvents(w io.Writer, frames models.JSONArray) {
	frame, idx, ok := pickFrame(frames, sampleEventFrameIndex)
	if !ok {
		return
	}
	events, ok := childArray(frame, "events")
	if !ok || len(events) == 0 {
		return
	}

	fmt.Fprintf(w, "\nSAMPLE EVENTS (Frame %d):\n", idx)
	for _, e := range firstItems(events, sampleEventCount) {
		event, ok := e.(*models.JSONObject)
		if !ok {
			continue
		}
		eventType, _ := event.Get("type")
		ts, _ := event.Get("timestamp")
		fmt.Fprintf(w, "  %s @ %sms\n", formatValue(eventType), formatValue(ts))

		switch eventType {
		case "CHAMPION_KILL":
			killer, _ := event.Get("killerId")
			victim, _ := event.Get("victimId")
			fmt.Fprintf(w, "    killerId: %s, victimId: %s\n", formatValue(killer), formatValue(victim))
			if assists, ok := childArray(event, "assistingParticipantIds"); ok {
				fmt.Fprintf(w, "    assistingParticipantIds: %d\n", len(assists))
			}
			printField(w, "    ", event, "position")
		case "BUILDING_KILL":
			building, _ := event.Get("buildingType")
			teamID, _ := event.Get("teamId")
			fmt.Fprintf(w, "    buildingType: %s, teamId: %s\n", formatValue(building), formatValue(teamID))
			printField(w, "    ", event, "killerId")
		}
	}
}

// pickFrame returns the frame at want, falling back to the last frame of a
// shorter timeline.
func pickFrame(frames models.JSONArray, want int) (*models.JSONObject, int, bool) {
	if len(frames) == 0 {
		return nil, 0, false
	}
	idx := want
	if idx >= len(frames) {
		idx = len(frames) - 1
	}
	frame, ok := frames[idx].(*models.JSONObject)
	return frame, idx, ok
}

func firstItems(arr models.JSONArray, n int) models.JSONArray {
	if len(arr) <= n {
		return arr
	}
	return arr[:n]
}
