// Command ephem tabulates true or apparent geocentric positions for a list of
// bodies over a time range described by a TOML job file:
//
//	bodies = ["Mars", "Jupiter", "Moon"]
//	start = 2026-08-28T00:00:00Z
//	end = 2026-09-04T00:00:00Z
//	step_days = 1.0
//	apparent = true
//	vsop87_dir = "/usr/share/vsop87" # optional, overrides conf.toml
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	kitlog "github.com/go-kit/kit/log"
	"github.com/naoina/toml"
	"github.com/soniakeys/meeus/v3/julian"
	sexa "github.com/soniakeys/sexagesimal"
	"github.com/soniakeys/unit"

	montenbruck "github.com/souabi/astro-montenbruck"
)

// job describes one tabulation run.
type job struct {
	Bodies     []string
	Start, End time.Time
	StepDays   float64
	Apparent   bool
	VSOP87Dir  string // overrides the configuration file when set
}

var jobFile = flag.String("job", "ephem.job", "path to the TOML job file")

func main() {
	flag.Parse()
	logger := kitlog.With(kitlog.NewLogfmtLogger(os.Stderr), "cmd", "ephem")

	jd, err := os.ReadFile(*jobFile)
	if err != nil {
		logger.Log("err", err)
		os.Exit(1)
	}
	var j job
	if err = toml.Unmarshal(jd, &j); err != nil {
		logger.Log("err", err, "file", *jobFile)
		os.Exit(1)
	}
	if len(j.Bodies) == 0 {
		logger.Log("err", "no bodies in job file")
		os.Exit(1)
	}
	if j.Start.IsZero() {
		logger.Log("err", "no start in job file")
		os.Exit(1)
	}
	if j.End.IsZero() {
		j.End = j.Start
	}
	if j.StepDays <= 0 {
		j.StepDays = 1
	}

	bodies := make([]montenbruck.Body, len(j.Bodies))
	for i, name := range j.Bodies {
		if bodies[i], err = montenbruck.BodyFromString(name); err != nil {
			logger.Log("err", err)
			os.Exit(1)
		}
	}

	var prov *montenbruck.Provider
	if j.VSOP87Dir != "" {
		prov, err = montenbruck.NewProviderPath(j.VSOP87Dir)
	} else {
		prov, err = montenbruck.NewProvider()
	}
	if err != nil {
		logger.Log("err", err)
		os.Exit(1)
	}

	kind := "true"
	if j.Apparent {
		kind = "apparent"
	}
	logger.Log("msg", "tabulating", "kind", kind, "bodies", len(bodies),
		"start", j.Start.Format(time.RFC3339), "end", j.End.Format(time.RFC3339))

	fmt.Println("        Time (UTC)       Body          Longitude       Latitude    Dist (AU)")
	step := time.Duration(j.StepDays * 24 * float64(time.Hour))
	for t := j.Start; !t.After(j.End); t = t.Add(step) {
		jde := julian.TimeToJD(t.UTC())
		for _, body := range bodies {
			var pos montenbruck.Position
			if j.Apparent {
				pos, err = prov.Apparent(body, jde)
			} else {
				pos, err = prov.True(body, jde)
			}
			if err != nil {
				logger.Log("err", err, "body", body)
				os.Exit(1)
			}
			if j.Apparent && !body.EmbedsAberration() {
				// Planetary positions already carry aberration through the
				// pipeline; the Moon and the Sun take the standalone term.
				pos.Lon -= montenbruck.LightTravel(pos.Dist)
			}
			fmt.Printf("%s  %-8s %14v %14v  %11.7f\n",
				t.Format("2006-01-02 15:04:05"), body,
				sexa.FmtAngle(unit.AngleFromDeg(pos.Lon)),
				sexa.FmtAngle(unit.AngleFromDeg(pos.Lat)),
				pos.Dist)
		}
	}
}
