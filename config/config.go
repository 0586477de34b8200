package config

import (
	"fmt"

	"gopkg.in/ini.v1"

	"shipcool/equipment"
	"shipcool/model"
	"shipcool/optimizer"
	"shipcool/plant"
	"shipcool/simulator"
	"shipcool/thermal"
	"shipcool/voyage"
)

type Server struct {
	Addr         string
	TickInterval int // ms of wall time between ticks
	TicksPerPush int // simulated seconds per pushed frame
}

type Config struct {
	Plant     plant.Config
	Voyage    voyage.Pattern
	Optimizer optimizer.Config
	Simulator simulator.Config
	Server    Server
	LogLevel  string

	SystemAgeMonths float64
}

// Load reads an ini file; keys that are missing keep their nominal defaults.
func Load(path string) (*Config, error) {
	file, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	return loadCfg(file), nil
}

// Default is the configuration of an empty file.
func Default() *Config {
	return loadCfg(ini.Empty())
}

func loadCfg(file *ini.File) *Config {
	pd := plant.DefaultConfig()
	p := file.Section("plant")
	hx := file.Section("heat_exchanger")
	od := optimizer.DefaultConfig()
	o := file.Section("optimizer")
	sd := simulator.DefaultConfig()
	s := file.Section("simulator")
	srv := file.Section("server")

	return &Config{
		Plant: plant.Config{
			RatedEngineHeat:    p.Key("RatedEngineHeat").MustFloat64(pd.RatedEngineHeat),
			FWThermalMass:      p.Key("FWThermalMass").MustFloat64(pd.FWThermalMass),
			RoomThermalMass:    p.Key("RoomThermalMass").MustFloat64(pd.RoomThermalMass),
			CpFW:               p.Key("CpFW").MustFloat64(pd.CpFW),
			AirDensity:         p.Key("AirDensity").MustFloat64(pd.AirDensity),
			CpAir:              p.Key("CpAir").MustFloat64(pd.CpAir),
			RoomSelfHeat:       p.Key("RoomSelfHeat").MustFloat64(pd.RoomSelfHeat),
			FlowResistance:     p.Key("FlowResistance").MustFloat64(pd.FlowResistance),
			Smoothing:          p.Key("Smoothing").MustFloat64(pd.Smoothing),
			TimeStep:           p.Key("TimeStep").MustFloat64(pd.TimeStep),
			TempNoiseSigma:     p.Key("TempNoiseSigma").MustFloat64(pd.TempNoiseSigma),
			PressureNoiseSigma: p.Key("PressureNoiseSigma").MustFloat64(pd.PressureNoiseSigma),
			HeatExchanger: thermal.Params{
				MaxEffectiveness: hx.Key("MaxEffectiveness").MustFloat64(pd.HeatExchanger.MaxEffectiveness),
				UA:               hx.Key("UA").MustFloat64(pd.HeatExchanger.UA),
				Cp:               hx.Key("Cp").MustFloat64(pd.HeatExchanger.Cp),
				Density:          hx.Key("Density").MustFloat64(pd.HeatExchanger.Density),
			},
			SeawaterPump:   loadEquipment(file.Section("equipment.seawater_pump"), pd.SeawaterPump),
			FreshwaterPump: loadEquipment(file.Section("equipment.freshwater_pump"), pd.FreshwaterPump),
			Fan:            loadEquipment(file.Section("equipment.fan"), pd.Fan),
		},
		Voyage: loadPattern(file.Section("voyage")),
		Optimizer: optimizer.Config{
			Initial: optimizer.Targets{
				Pump: loadBand(o, "InitialPump", od.Initial.Pump),
				Fan:  loadBand(o, "InitialFan", od.Initial.Fan),
			},
			Mature: optimizer.Targets{
				Pump: loadBand(o, "MaturePump", od.Mature.Pump),
				Fan:  loadBand(o, "MatureFan", od.Mature.Fan),
			},
			TempDeadband:  o.Key("TempDeadband").MustFloat64(od.TempDeadband),
			TempStep:      o.Key("TempStep").MustFloat64(od.TempStep),
			EnergyStep:    o.Key("EnergyStep").MustFloat64(od.EnergyStep),
			FreqLimits:    loadBand(o, "Freq", od.FreqLimits),
			HistorySize:   o.Key("HistorySize").MustInt(od.HistorySize),
			AverageWindow: o.Key("AverageWindow").MustFloat64(od.AverageWindow),
		},
		Simulator: simulator.Config{
			SWPumpCount: s.Key("SWPumpCount").MustInt(sd.SWPumpCount),
			FWPumpCount: s.Key("FWPumpCount").MustInt(sd.FWPumpCount),
			FanCount:    s.Key("FanCount").MustInt(sd.FanCount),
			InitialFreq: model.Frequencies{
				SWPump: s.Key("SWPumpFreq").MustFloat64(sd.InitialFreq.SWPump),
				FWPump: s.Key("FWPumpFreq").MustFloat64(sd.InitialFreq.FWPump),
				Fan:    s.Key("FanFreq").MustFloat64(sd.InitialFreq.Fan),
			},
			SeawaterBase:   s.Key("SeawaterBase").MustFloat64(sd.SeawaterBase),
			OutsideAirBase: s.Key("OutsideAirBase").MustFloat64(sd.OutsideAirBase),
			FWTarget:       s.Key("FWTarget").MustFloat64(sd.FWTarget),
			RoomTarget:     s.Key("RoomTarget").MustFloat64(sd.RoomTarget),
			OptimizeEvery:  s.Key("OptimizeEvery").MustInt(sd.OptimizeEvery),
		},
		Server: Server{
			Addr:         srv.Key("Addr").MustString(":9000"),
			TickInterval: srv.Key("TickInterval").MustInt(100),
			TicksPerPush: srv.Key("TicksPerPush").MustInt(10),
		},
		LogLevel:        file.Section("log").Key("Level").MustString("info"),
		SystemAgeMonths: o.Key("SystemAgeMonths").MustFloat64(0),
	}
}

func loadEquipment(sec *ini.Section, def equipment.Characteristics) equipment.Characteristics {
	return equipment.Characteristics{
		Name:       def.Name,
		Type:       def.Type,
		RatedFlow:  sec.Key("RatedFlow").MustFloat64(def.RatedFlow),
		RatedHead:  sec.Key("RatedHead").MustFloat64(def.RatedHead),
		RatedPower: sec.Key("RatedPower").MustFloat64(def.RatedPower),
	}
}

func loadBand(sec *ini.Section, prefix string, def equipment.Band) equipment.Band {
	return equipment.Band{
		Min: sec.Key(prefix + "Min").MustFloat64(def.Min),
		Max: sec.Key(prefix + "Max").MustFloat64(def.Max),
	}
}

func loadPattern(sec *ini.Section) voyage.Pattern {
	d := voyage.DefaultPattern()
	phase := func(prefix string, def voyage.Phase) voyage.Phase {
		return voyage.Phase{
			Name:      def.Name,
			Duration:  sec.Key(prefix + "Duration").MustFloat64(def.Duration),
			StartLoad: sec.Key(prefix + "StartLoad").MustFloat64(def.StartLoad),
			EndLoad:   sec.Key(prefix + "EndLoad").MustFloat64(def.EndLoad),
		}
	}
	return voyage.Pattern{
		Acceleration: phase("Acceleration", d.Acceleration),
		Steady:       phase("Steady", d.Steady),
		Deceleration: phase("Deceleration", d.Deceleration),
		Berthed:      phase("Berthed", d.Berthed),
	}
}
