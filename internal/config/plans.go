package config

import (
	"errors"
	"log"
	"strings"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// UnlimitedMatches marks a plan with no per-period allowance.
const UnlimitedMatches = -1

// Plan describes how many fresh tone matches a tier allows per billing period.
type Plan struct {
	ID         string `mapstructure:"id"`
	MatchLimit int    `mapstructure:"matchLimit"`
}

type PlanCatalog struct {
	Plans []Plan `mapstructure:"plans"`
}

func DefaultPlanCatalog() PlanCatalog {
	return PlanCatalog{
		Plans: []Plan{
			{ID: "free", MatchLimit: 3},
			{ID: "pro", MatchLimit: 100},
			{ID: "studio", MatchLimit: UnlimitedMatches},
		},
	}
}

// PlanCatalogHolder exposes the current catalog and follows file changes.
type PlanCatalogHolder struct {
	current atomic.Value // holds PlanCatalog
}

func NewPlanCatalogHolder() (*PlanCatalogHolder, error) {
	v := viper.New()

	v.SetConfigName("plans")
	v.SetConfigType("yml")
	v.AddConfigPath("/etc/tonelify")
	v.AddConfigPath(".")

	v.SetEnvPrefix("TONELIFY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
		defaults := DefaultPlanCatalog()
		v.SetDefault("plans", defaults.Plans)
	}

	var catalog PlanCatalog
	if err := v.Unmarshal(&catalog); err != nil {
		return nil, err
	}
	if err := validatePlanCatalog(catalog); err != nil {
		return nil, err
	}

	holder := &PlanCatalogHolder{}
	holder.current.Store(catalog)

	v.WatchConfig()
	v.OnConfigChange(func(e fsnotify.Event) {
		var updated PlanCatalog
		if err := v.Unmarshal(&updated); err != nil {
			log.Printf("[plan-config] reload failed: %v", err)
			return
		}
		if err := validatePlanCatalog(updated); err != nil {
			log.Printf("[plan-config] invalid config ignored: %v", err)
			return
		}
		holder.current.Store(updated)
		log.Printf("[plan-config] reloaded from %s", e.Name)
	})

	return holder, nil
}

func NewPlanCatalogHolderFromCatalog(catalog PlanCatalog) *PlanCatalogHolder {
	holder := &PlanCatalogHolder{}
	holder.current.Store(catalog)
	return holder
}

func (h *PlanCatalogHolder) Get() PlanCatalog {
	return h.current.Load().(PlanCatalog)
}

// Lookup returns the plan for id, falling back to the free tier.
func (h *PlanCatalogHolder) Lookup(id string) Plan {
	catalog := h.Get()
	for _, plan := range catalog.Plans {
		if plan.ID == id {
			return plan
		}
	}
	for _, plan := range catalog.Plans {
		if plan.ID == "free" {
			return plan
		}
	}
	return Plan{ID: "free", MatchLimit: 3}
}

func validatePlanCatalog(catalog PlanCatalog) error {
	if len(catalog.Plans) == 0 {
		return errors.New("plans cannot be empty")
	}
	hasFree := false
	for _, plan := range catalog.Plans {
		if plan.ID == "" {
			return errors.New("plan id cannot be empty")
		}
		if plan.MatchLimit < 0 && plan.MatchLimit != UnlimitedMatches {
			return errors.New("plan matchLimit must be non-negative or unlimited")
		}
		if plan.ID == "free" {
			hasFree = true
		}
	}
	if !hasFree {
		return errors.New("plan catalog must define a free tier")
	}
	return nil
}
