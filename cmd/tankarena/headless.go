package main

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"text/tabwriter"

	"github.com/bytearena/tankarena/game/tankarena"
	"github.com/cheggaaa/pb"
	"github.com/pkg/errors"
	"github.com/ttacon/chalk"
)

func headlessAction(config gameConfig, matches int) error {

	if matches <= 0 {
		return errors.Errorf("invalid number of matches %d", matches)
	}

	if config.duration <= 0 {
		return errors.New("headless games need a --duration")
	}

	totals := make(map[int]*tankarena.Score)
	wins := make(map[int]int)

	bar := pb.New(matches)
	bar.SetWidth(80)
	bar.Start()

	for i := 0; i < matches; i++ {
		m, err := newMatch(config, config.seed+int64(i))
		if err != nil {
			bar.Finish()
			return err
		}

		if err := m.server.RunHeadless(nil); err != nil {
			bar.Finish()
			return errors.Wrapf(err, "match #%d failed", i)
		}

		scores := m.game.GetScores()
		for _, score := range scores {
			total, ok := totals[score.PlayerIdx]
			if !ok {
				total = &tankarena.Score{PlayerIdx: score.PlayerIdx, Name: score.Name, Period: score.Period}
				totals[score.PlayerIdx] = total
			}

			total.Score += score.Score
			total.Stats.ShotsFired += score.Stats.ShotsFired
			total.Stats.HitsGiven += score.Stats.HitsGiven
			total.Stats.TargetsDestroyed += score.Stats.TargetsDestroyed
			total.Stats.PowerUpsCollected += score.Stats.PowerUpsCollected
		}

		if winner, ok := winnerOf(scores); ok {
			wins[winner]++
		}

		bar.Increment()
	}

	bar.Finish()

	res := make([]tankarena.Score, 0, len(totals))
	for _, total := range totals {
		res = append(res, *total)
	}
	sort.Slice(res, func(i, j int) bool { return res[i].PlayerIdx < res[j].PlayerIdx })

	fmt.Println(chalk.Green.Color("\n" + strconv.Itoa(matches) + " match(es) played\n"))

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "#\tAGENT\tPERIOD\tWINS\tTOTAL\tAVERAGE\tSHOTS\tHITS\tTARGETS\tPOWER-UPS")
	for _, total := range res {
		fmt.Fprintf(w, "%d\t%s\t%d\t%d\t%d\t%.1f\t%d\t%d\t%d\t%d\n",
			total.PlayerIdx,
			total.Name,
			total.Period,
			wins[total.PlayerIdx],
			total.Score,
			float64(total.Score)/float64(matches),
			total.Stats.ShotsFired,
			total.Stats.HitsGiven,
			total.Stats.TargetsDestroyed,
			total.Stats.PowerUpsCollected,
		)
	}

	return w.Flush()
}

// winnerOf returns the player with the strictly highest score.
func winnerOf(scores []tankarena.Score) (int, bool) {
	best := -1
	tie := false

	for i, score := range scores {
		switch {
		case best < 0 || score.Score > scores[best].Score:
			best, tie = i, false
		case score.Score == scores[best].Score:
			tie = true
		}
	}

	if best < 0 || tie {
		return 0, false
	}

	return scores[best].PlayerIdx, true
}

func printScores(scores []tankarena.Score) {
	fmt.Println("")

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "#\tAGENT\tPERIOD\tSCORE\tSHOTS\tHITS\tTARGETS\tPOWER-UPS\tDISTANCE")
	for _, score := range scores {
		fmt.Fprintf(w, "%d\t%s\t%d\t%d\t%d\t%d\t%d\t%d\t%.1f\n",
			score.PlayerIdx,
			score.Name,
			score.Period,
			score.Score,
			score.Stats.ShotsFired,
			score.Stats.HitsGiven,
			score.Stats.TargetsDestroyed,
			score.Stats.PowerUpsCollected,
			score.Stats.DistanceTravelled,
		)
	}
	w.Flush()

	if winner, ok := winnerOf(scores); ok {
		for _, score := range scores {
			if score.PlayerIdx == winner {
				fmt.Println(chalk.Green.Color("\nWinner: #" + strconv.Itoa(winner) + " " + score.Name))
			}
		}
	} else {
		fmt.Println(chalk.Yellow.Color("\nNo winner"))
	}
}
