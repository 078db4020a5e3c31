package report

import (
	"fmt"
	"io"

	"github.com/mikhailocampo/rift-rewind-hackathon/internal/models"
)

// importantParticipantFields is the curated field list printed for the
// first participant of a match. Riot ships ~130 fields per participant;
// these are the ones that matter for the schema.
var importantParticipantFields = []string{
	"puuid", "summonerId", "summonerName", "riotIdGameName", "riotIdTagline",
	"championId", "championName", "teamId", "teamPosition", "individualPosition",
	"kills", "deaths", "assists", "goldEarned", "totalDamageDealtToChampions",
	"visionScore", "champLevel", "win",
	"item0", "item1", "item2", "item3", "item4", "item5", "item6",
	"summoner1Id", "summoner2Id",
}

// Match writes the match-summary inspection report: a bounded structure
// view, key statistics, and the game/team/participant field drill-down.
func Match(w io.Writer, doc models.Document, source string) error {
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

	if meta, ok := childObject(obj, "metadata"); ok {
		fmt.Fprintf(w, "\nMetadata keys: %s\n", keyList(meta.Keys()))
		printField(w, "  ", meta, "matchId")
		if parts, ok := childArray(meta, "participants"); ok {
			fmt.Fprintf(w, "  - Number of participants: %d\n", len(parts))
			if len(parts) > 0 {
				if puuid, ok := parts[0].(string); ok {
					fmt.Fprintf(w, "  - Sample PUUID: %s\n", puuid)
				}
			}
		}
	}

	info, ok := childObject(obj, "info")
	if !ok {
		return nil
	}
	fmt.Fprintf(w, "\nInfo keys: %s\n", keyList(firstN(info.Keys(), 20)))

	participants, _ := childArray(info, "participants")
	fmt.Fprintf(w, "  - Number of participants: %d\n", len(participants))
	if len(participants) > 0 {
		if first, ok := participants[0].(*models.JSONObject); ok {
			fmt.Fprintf(w, "  - Participant keys (first player): %s\n", keyList(first.Keys()))
		}
	}
	if teams, ok := childArray(info, "teams"); ok {
		fmt.Fprintf(w, "  - Number of teams: %d\n", len(teams))
	}

	gameInfoSection(w, info)
	teamsSection(w, info)
	participantSection(w, participants)
	return nil
}

func gameInfoSection(w io.Writer, info *models.JSONObject) {
	fmt.Fprintf(w, "\nGAME INFO:\n")
	printField(w, "  ", info, "gameId")
	printField(w, "  ", info, "platformId")
	printField(w, "  ", info, "gameMode")
	printField(w, "  ", info, "gameType")
	if dur, ok := childNumber(info, "gameDuration"); ok {
		if secs, err := dur.Int64(); err == nil {
			fmt.Fprintf(w, "  gameDuration: %ds (%dmin)\n", secs, secs/60)
		} else {
			fmt.Fprintf(w, "  gameDuration: %ss\n", dur.String())
		}
	}
	for _, key := range []string{"gameStartTimestamp", "gameEndTimestamp"} {
		if ts, ok := childNumber(info, key); ok {
			fmt.Fprintf(w, "  %s: %s (epoch ms)\n", key, ts.String())
		}
	}
	printField(w, "  ", info, "queueId")
	printField(w, "  ", info, "mapId")
	printField(w, "  ", info, "gameVersion")
}

func teamsSection(w io.Writer, info *models.JSONObject) {
	teams, ok := childArray(info, "teams")
	if !ok {
		return
	}
	fmt.Fprintf(w, "\nTEAMS:\n")
	for _, t := range teams {
		team, ok := t.(*models.JSONObject)
		if !ok {
			continue
		}
		teamID, _ := team.Get("teamId")
		fmt.Fprintf(w, "  Team %s:\n", formatValue(teamID))
		printField(w, "    ", team, "win")
		if objectives, ok := childObject(team, "objectives"); ok {
			fmt.Fprintf(w, "    objectives: %s\n", keyList(objectives.Keys()))
		}
		if bans, ok := childArray(team, "bans"); ok {
			fmt.Fprintf(w, "    bans: %d champions\n", len(bans))
		}
	}
}

func participantSection(w io.Writer, participants models.JSONArray) {
	if len(participants) == 0 {
		return
	}
	participant, ok := participants[0].(*models.JSONObject)
	if !ok {
		return
	}

	fmt.Fprintf(w, "\nPARTICIPANT FIELDS (First Player):\n")
	for _, field := range importantParticipantFields {
		printField(w, "  ", participant, field)
	}

	if challenges, ok := childObject(participant, "challenges"); ok {
		fmt.Fprintf(w, "\n  challenges (sample keys): %s\n", keyList(firstN(challenges.Keys(), 10)))
	}

	perks, ok := childObject(participant, "perks")
	if !ok {
		return
	}
	fmt.Fprintf(w, "\n  perks structure:\n")
	if statPerks, ok := childObject(perks, "statPerks"); ok {
		fmt.Fprintf(w, "    statPerks: %s\n", formatValue(statPerks))
	}
	if styles, ok := childArray(perks, "styles"); ok {
		fmt.Fprintf(w, "    styles: %d style groups\n", len(styles))
		for _, s := range styles {
			style, ok := s.(*models.JSONObject)
			if !ok {
				continue
			}
			desc, _ := style.Get("description")
			id, _ := style.Get("style")
			fmt.Fprintf(w, "      - %s: style=%s\n", formatValue(desc), formatValue(id))
		}
	}
}
