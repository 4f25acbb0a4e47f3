package shell

import (
	"context"

	"github.com/tailored-agentic-units/ritualmesh/commands"
)

func (sh *Shell) builtins() []commands.Entry {
	return []commands.Entry{
		{Name: "oracle", Action: sh.oracle},
		{Name: "summon", Action: sh.summon},
		{Name: "whoami", Action: sh.whoami},
	}
}

func (sh *Shell) oracle(context.Context) error {
	sh.session.Log("The Oracle sees a thousand timelines converge…")
	return nil
}

// summon runs one discovery pass over the modules directory and logs every
// outcome.
func (sh *Shell) summon(ctx context.Context) error {
	sh.session.Log("Summoning ritual modules…")

	outcomes, err := sh.loader.DiscoverAndInvoke(ctx, sh.modulesDir, sh.session)
	if err != nil {
		return err
	}

	for _, o := range outcomes {
		sh.session.Log(o.Message())
	}
	return nil
}

func (sh *Shell) whoami(context.Context) error {
	sh.session.Log("You are the architect. Your mesh ID is " + sh.session.ID())
	return nil
}
