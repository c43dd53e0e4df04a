package arenaserver

import (
	"fmt"
	"log"
	"time"

	"github.com/bytearena/tankarena/common/utils"
	"github.com/ttacon/chalk"
)

func (s *Server) monitoring(stopChannel chan bool) {
	monitorfreq := time.Second
	debugNbMutations := 0
	debugNbUpdates := 0

	for {
		select {
		case <-stopChannel:
			{
				return
			}
		case <-time.After(monitorfreq):
			{
				s.debugmutex.Lock()
				nbMutations, nbUpdates := s.debugNbMutations, s.debugNbUpdates
				s.debugmutex.Unlock()

				if utils.IsDebug() {
					fmt.Print(chalk.Cyan)
					log.Println(
						"-- MONITORING --",
						nbMutations-debugNbMutations, "mutations per", monitorfreq, ";",
						nbUpdates-debugNbUpdates, "updates per", monitorfreq,
						chalk.Reset,
					)
				}

				debugNbMutations = nbMutations
				debugNbUpdates = nbUpdates
			}
		}
	}
}
