package metrics

import (
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Summary aggregates the games played by one agent configuration.
type Summary struct {
	Agent     int
	Games     int
	Wins      int
	WinRate   float64
	MeanScore float64
	StdScore  float64 // Sample standard deviation, 0 for a single game
	MeanMoves float64
}

// Summarize groups records by agent, ordered by agent ID.
func Summarize(records []GameRecord) []Summary {
	scores := map[int][]float64{}
	moves := map[int][]float64{}
	wins := map[int]int{}
	for _, r := range records {
		scores[r.Agent] = append(scores[r.Agent], r.Score)
		moves[r.Agent] = append(moves[r.Agent], float64(r.Moves))
		if r.Won {
			wins[r.Agent]++
		}
	}

	summaries := make([]Summary, 0, len(scores))
	for id, s := range scores {
		games := len(s)
		summary := Summary{
			Agent:     id,
			Games:     games,
			Wins:      wins[id],
			WinRate:   float64(wins[id]) / float64(games),
			MeanMoves: stat.Mean(moves[id], nil),
		}
		if games > 1 {
			summary.MeanScore, summary.StdScore = stat.MeanStdDev(s, nil)
		} else {
			summary.MeanScore = s[0]
		}
		summaries = append(summaries, summary)
	}
	sort.Slice(summaries, func(i, j int) bool { return summaries[i].Agent < summaries[j].Agent })
	return summaries
}
