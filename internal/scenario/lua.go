// Package scenario loads Lua scripted simulation scenarios and runs them
// against a fresh engine, collecting assertion failures.
package scenario

import (
	"fmt"
	"math"
	"path/filepath"
	"strings"

	"github.com/Shopify/go-lua"
)

const scenarioTypeName = "scenario"

type Scenario struct {
	Name  string
	Steps []Step
}

type Step struct {
	Kind string
	Args map[string]any
}

// LoadFile runs a Lua script that must return a Scenario. A scenario
// without a name is named after the file.
func LoadFile(path string) (*Scenario, error) {
	state := newState()
	if err := lua.LoadFile(state, path, ""); err != nil {
		return nil, fmt.Errorf("load lua: %w", err)
	}
	sc, err := run(state)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(sc.Name) == "" {
		sc.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return sc, nil
}

func LoadString(src string) (*Scenario, error) {
	state := newState()
	if err := lua.LoadString(state, src); err != nil {
		return nil, fmt.Errorf("load lua: %w", err)
	}
	return run(state)
}

func newState() *lua.State {
	state := lua.NewState()
	lua.OpenLibraries(state)
	registerScenarioType(state)
	registerScenarioConstructor(state)
	return state
}

func run(state *lua.State) (*Scenario, error) {
	if err := state.ProtectedCall(0, 1, 0); err != nil {
		return nil, fmt.Errorf("run lua: %w", err)
	}
	if state.TypeOf(-1) != lua.TypeUserData {
		state.Pop(1)
		return nil, fmt.Errorf("scenario script must return Scenario")
	}
	ud := state.ToUserData(-1)
	state.Pop(1)
	sc, ok := ud.(*Scenario)
	if !ok || sc == nil {
		return nil, fmt.Errorf("scenario script returned invalid Scenario")
	}
	return sc, nil
}

func registerScenarioType(state *lua.State) {
	lua.NewMetaTable(state, scenarioTypeName)
	state.NewTable()
	lua.SetFunctions(state, scenarioMethods, 0)
	state.SetField(-2, "__index")
	state.Pop(1)
}

func registerScenarioConstructor(state *lua.State) {
	state.NewTable()
	lua.SetFunctions(state, []lua.RegistryFunction{{Name: "new", Function: scenarioNew}}, 0)
	state.SetGlobal("Scenario")
}

func scenarioNew(state *lua.State) int {
	name := lua.OptString(state, 1, "")
	state.PushUserData(&Scenario{Name: name})
	lua.SetMetaTableNamed(state, scenarioTypeName)
	return 1
}

// Every method returns the scenario itself so calls can be chained.
var scenarioMethods = []lua.RegistryFunction{
	{Name: "config", Function: tableStep("config")},
	{Name: "set", Function: tableStep("set")},
	{Name: "study", Function: countStep("study")},
	{Name: "research", Function: countStep("research")},
	{Name: "work", Function: countStep("work")},
	{Name: "party", Function: countStep("party")},
	{Name: "rest", Function: countStep("rest")},
	{Name: "weeks", Function: countStep("weeks")},
	{Name: "choose", Function: scenarioChoose},
	{Name: "expect_term", Function: intStep("expect_term", "term")},
	{Name: "expect_min_credits", Function: intStep("expect_min_credits", "credits")},
	{Name: "expect_money_at_least", Function: intStep("expect_money_at_least", "money")},
	{Name: "expect_flag", Function: scenarioExpectFlag},
	{Name: "expect_stat", Function: scenarioExpectStat},
}

func tableStep(kind string) lua.Function {
	return func(state *lua.State) int {
		sc := checkScenario(state)
		lua.CheckType(state, 2, lua.TypeTable)
		appendStep(sc, kind, tableToMap(state, 2))
		return self(state)
	}
}

func countStep(kind string) lua.Function {
	return func(state *lua.State) int {
		sc := checkScenario(state)
		n := lua.OptInteger(state, 2, 1)
		appendStep(sc, kind, map[string]any{"n": n})
		return self(state)
	}
}

func intStep(kind, key string) lua.Function {
	return func(state *lua.State) int {
		sc := checkScenario(state)
		appendStep(sc, kind, map[string]any{key: lua.CheckInteger(state, 2)})
		return self(state)
	}
}

// scenarioChoose answers the pending event. Options are numbered from 1.
func scenarioChoose(state *lua.State) int {
	sc := checkScenario(state)
	appendStep(sc, "choose", map[string]any{"option": lua.CheckInteger(state, 2)})
	return self(state)
}

func scenarioExpectFlag(state *lua.State) int {
	sc := checkScenario(state)
	name := lua.CheckString(state, 2)
	want := true
	if !state.IsNoneOrNil(3) {
		lua.CheckType(state, 3, lua.TypeBoolean)
		want = state.ToBoolean(3)
	}
	appendStep(sc, "expect_flag", map[string]any{"name": name, "value": want})
	return self(state)
}

func scenarioExpectStat(state *lua.State) int {
	sc := checkScenario(state)
	name := lua.CheckString(state, 2)
	lo := lua.CheckInteger(state, 3)
	hi := lua.CheckInteger(state, 4)
	appendStep(sc, "expect_stat", map[string]any{"name": name, "min": lo, "max": hi})
	return self(state)
}

func self(state *lua.State) int {
	state.PushValue(1)
	return 1
}

func checkScenario(state *lua.State) *Scenario {
	ud := lua.CheckUserData(state, 1, scenarioTypeName)
	if sc, ok := ud.(*Scenario); ok && sc != nil {
		return sc
	}
	lua.ArgumentError(state, 1, "scenario expected")
	return nil
}

func appendStep(sc *Scenario, kind string, data map[string]any) {
	if sc == nil {
		return
	}
	if data == nil {
		data = map[string]any{}
	}
	sc.Steps = append(sc.Steps, Step{Kind: kind, Args: data})
}

func tableToMap(state *lua.State, index int) map[string]any {
	output := map[string]any{}
	if state.TypeOf(index) != lua.TypeTable {
		return output
	}
	index = state.AbsIndex(index)
	state.PushNil()
	for state.Next(index) {
		if state.TypeOf(-2) == lua.TypeString {
			key, _ := state.ToString(-2)
			output[key] = luaToGo(state, -1)
		}
		state.Pop(1)
	}
	return output
}

func luaToGo(state *lua.State, index int) any {
	switch state.TypeOf(index) {
	case lua.TypeString:
		value, _ := state.ToString(index)
		return value
	case lua.TypeNumber:
		value, _ := state.ToNumber(index)
		if math.Mod(value, 1) == 0 {
			return int(value)
		}
		return value
	case lua.TypeBoolean:
		return state.ToBoolean(index)
	case lua.TypeTable:
		return tableToMap(state, index)
	default:
		return nil
	}
}
