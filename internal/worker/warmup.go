package worker

import (
	"context"
	"fmt"

	"github.com/vctstats/cluster-dashboard/internal/logic"
	"github.com/vctstats/cluster-dashboard/internal/models"
)

// Views are the services whose results get precomputed
type Views struct {
	Options    logic.OptionsService
	Overview   logic.OverviewService
	TeamStats  logic.TeamStatsService
	Tournament logic.TournamentService
}

// WarmupJobs lists one job per view a dashboard visitor can open without
// choosing a feature: options, each cluster/tournament overview, each team
// and each tournament. Nil services are skipped.
func WarmupJobs(ds *models.Dataset, v Views) []Job {
	var jobs []Job
	add := func(name string, run func(ctx context.Context) error) {
		jobs = append(jobs, Job{Name: name, Run: run})
	}

	if v.Options != nil {
		add("options", func(ctx context.Context) error {
			_, err := v.Options.GetOptions(ctx)
			return err
		})
	}

	clusters := logic.DistinctClusters(ds)
	tournaments := logic.Tournaments(ds)
	if v.Overview != nil {
		for _, c := range clusters {
			for _, t := range tournaments {
				c, t := c, t // per-iteration copies; the module targets go1.21 loop semantics
				add(fmt.Sprintf("overview:%d:%s", c, t), func(ctx context.Context) error {
					_, err := v.Overview.GetOverview(ctx, c, t)
					return err
				})
			}
		}
	}
	if v.TeamStats != nil {
		for _, team := range logic.Teams(ds) {
			team := team // per-iteration copy; the module targets go1.21 loop semantics
			add("team:"+team, func(ctx context.Context) error {
				_, err := v.TeamStats.GetTeamView(ctx, team)
				return err
			})
		}
	}
	if v.Tournament != nil {
		add("tournaments", func(ctx context.Context) error {
			_, err := v.Tournament.ListTournaments(ctx)
			return err
		})
		for _, t := range tournaments {
			t := t // per-iteration copy; the module targets go1.21 loop semantics
			add("tournament:"+t, func(ctx context.Context) error {
				_, err := v.Tournament.GetTournament(ctx, t)
				return err
			})
		}
	}
	return jobs
}

// Warm enqueues every job on p and returns how many were accepted
func Warm(p *Pool, jobs []Job) int {
	n := 0
	for _, job := range jobs {
		if p.Enqueue(job) {
			n++
		}
	}
	return n
}
