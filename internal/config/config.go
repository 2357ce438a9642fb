package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/hashicorp/hcl/v2/hclsimple"
	"github.com/jackc/pgx/v5"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
)

const (
	BackendBigQuery = "bigquery"
	BackendPostgres = "postgres"
)

type Variable struct {
	Name    string `hcl:"name,label"`
	Default string `hcl:"default,optional"`
}

type Locals struct {
	Values map[string]cty.Value `hcl:",remain"`
}

type Env struct {
	Name      string `hcl:"name,label"`
	Project   string `hcl:"project"`
	Dataset   string `hcl:"dataset"`
	Backend   string `hcl:"backend,optional"`
	DBUrl     string `hcl:"db_url,optional"`
	AllowDrop bool   `hcl:"allow_drop,optional"`
}

type Config struct {
	Variables   []Variable `hcl:"variable,block"`
	Locals      *Locals    `hcl:"locals,block"`
	Envs        []Env      `hcl:"env,block"`
	SelectedEnv Env
}

func GetConfig(filePath string, env string, vars Vars) (*Config, error) {
	var config Config

	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCLFile(filePath)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %w", diags)
	}
	variables := make(map[string]cty.Value)
	evalCtx := &hcl.EvalContext{
		Functions: map[string]function.Function{
			"getenv": getEnvFunc,
		},
		Variables: map[string]cty.Value{
			"var": cty.ObjectVal(variables),
		},
	}
	schema := &hcl.BodySchema{
		Blocks: []hcl.BlockHeaderSchema{
			{Type: "variable", LabelNames: []string{"name"}},
			{Type: "locals", LabelNames: []string{}},
			{Type: "env", LabelNames: []string{"name"}},
		},
	}
	content, diags := hclFile.Body.Content(schema)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse body content: %w", diags)
	}

	// Collect variables
	for _, block := range content.Blocks.OfType("variable") {
		varName := block.Labels[0]
		attrs, diags := block.Body.JustAttributes()
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse attributes of variable '%s': %w", varName, diags)
		}
		if val, ok := vars[varName]; ok {
			variables[varName] = cty.StringVal(val)
			continue
		}
		defaultAttr, ok := attrs["default"]
		if !ok {
			continue
		}
		defaultVal, diags := defaultAttr.Expr.Value(evalCtx)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to evaluate default value of '%s': %w", varName, diags)
		}
		variables[varName] = defaultVal
	}
	evalCtx.Variables["var"] = cty.ObjectVal(variables)

	// Collect locals
	if len(content.Blocks.OfType("locals")) > 0 {
		block := content.Blocks.OfType("locals")[0]
		attrs, diags := block.Body.JustAttributes()
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse locals block: %w", diags)
		}
		localVals := make(map[string]cty.Value)
		for name, attr := range attrs {
			val, diags := attr.Expr.Value(evalCtx)
			if diags.HasErrors() {
				return nil, fmt.Errorf("failed to evaluate local value '%s': %w", name, diags)
			}
			localVals[name] = val
		}
		evalCtx.Variables["local"] = cty.ObjectVal(localVals)
	}

	err := hclsimple.DecodeFile(filePath, evalCtx, &config)
	if err != nil {
		return nil, err
	}

	if env != "" {
		for _, e := range config.Envs {
			if e.Name == env {
				if err := validateEnv(e); err != nil {
					return nil, err
				}
				return &Config{
					Variables:   config.Variables,
					Envs:        []Env{e},
					SelectedEnv: e,
				}, nil
			}
		}
	}

	return nil, fmt.Errorf("environment %q not found in config", env)
}

func validateEnv(e Env) error {
	switch backendOrDefault(e) {
	case BackendBigQuery:
		return nil
	case BackendPostgres:
		if e.DBUrl == "" {
			return fmt.Errorf("environment %q uses the postgres backend but sets no db_url", e.Name)
		}
		if _, err := pgx.ParseConfig(e.DBUrl); err != nil {
			return fmt.Errorf("invalid db_url in environment %q: %w", e.Name, err)
		}
		return nil
	default:
		return fmt.Errorf("unknown backend %q in environment %q", e.Backend, e.Name)
	}
}

func backendOrDefault(e Env) string {
	if e.Backend == "" {
		return BackendBigQuery
	}
	return e.Backend
}

func (conf *Config) GetProject() string {
	return conf.SelectedEnv.Project
}

func (conf *Config) GetDataset() string {
	return conf.SelectedEnv.Dataset
}

func (conf *Config) GetBackend() string {
	return backendOrDefault(conf.SelectedEnv)
}

func (conf *Config) GetDBUrl() string {
	return conf.SelectedEnv.DBUrl
}

func (conf *Config) GetAllowDrop() bool {
	return conf.SelectedEnv.AllowDrop
}

var getEnvFunc = function.New(&function.Spec{
	Params: []function.Parameter{
		{
			Name: "key",
			Type: cty.String,
		},
	},
	Type: function.StaticReturnType(cty.String),
	Impl: func(args []cty.Value, retType cty.Type) (cty.Value, error) {
		val, ok := os.LookupEnv(args[0].AsString())
		if !ok {
			return cty.StringVal(""), fmt.Errorf("environment variable %q not found", args[0].AsString())
		}
		return cty.StringVal(val), nil
	},
})
