package args

import (
	"testing"

	"github.com/cookrun/cookrun/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBind_MissingRequiredArgument(t *testing.T) {
	specs := []model.ArgumentSpec{
		{Name: "target", ArgType: model.ArgTypeString, Required: true, DefaultValue: "fallback"},
	}

	_, err := Bind(specs, map[string]string{})

	var missing *MissingRequiredArgumentError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "target", missing.Name)
}

func TestBind_InvalidBooleanLiteral(t *testing.T) {
	specs := []model.ArgumentSpec{
		{Name: "force", ArgType: model.ArgTypeBoolean},
	}

	_, err := Bind(specs, map[string]string{"force": "notabool"})

	var invalid *InvalidArgumentTypeError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "force", invalid.Name)
	assert.Equal(t, model.ArgTypeBoolean, invalid.Expected)
	assert.Equal(t, "notabool", invalid.Got)
}

func TestBind_BooleanCaseInsensitive(t *testing.T) {
	specs := []model.ArgumentSpec{
		{Name: "force", ArgType: model.ArgTypeBoolean},
	}

	bound, err := Bind(specs, map[string]string{"force": "TRUE"})
	require.NoError(t, err)

	value, ok := bound.Lookup("force")
	require.True(t, ok)
	assert.Equal(t, KindBool, value.Kind())
	assert.True(t, value.Bool())
	assert.Equal(t, "true", value.String())
}

func TestBind_DefaultsApplyWhenAbsent(t *testing.T) {
	specs := []model.ArgumentSpec{
		{Name: "count", ArgType: model.ArgTypeInteger, DefaultValue: "42"},
		{Name: "name", ArgType: model.ArgTypeString, DefaultValue: "world"},
		{Name: "verbose", ArgType: model.ArgTypeBoolean, DefaultValue: "false"},
	}

	bound, err := Bind(specs, map[string]string{})
	require.NoError(t, err)

	count, _ := bound.Lookup("count")
	assert.Equal(t, int64(42), count.Int())
	assert.Equal(t, "42", count.String())

	name, _ := bound.Lookup("name")
	assert.Equal(t, "world", name.String())

	verbose, _ := bound.Lookup("verbose")
	assert.False(t, verbose.Bool())
}

func TestBind_RequiredNotSatisfiedByDefault(t *testing.T) {
	specs := []model.ArgumentSpec{
		{Name: "host", ArgType: model.ArgTypeString, Required: true, DefaultValue: "localhost"},
	}

	_, err := Bind(specs, map[string]string{})
	var missing *MissingRequiredArgumentError
	require.ErrorAs(t, err, &missing)

	bound, err := Bind(specs, map[string]string{"host": "db01"})
	require.NoError(t, err)
	host, _ := bound.Lookup("host")
	assert.Equal(t, "db01", host.String())
}

func TestBind_InvalidDefaultValue(t *testing.T) {
	specs := []model.ArgumentSpec{
		{Name: "retries", ArgType: model.ArgTypeInteger, DefaultValue: "three"},
	}

	_, err := Bind(specs, map[string]string{})

	var invalid *InvalidDefaultValueError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "retries", invalid.Name)
}

func TestBind_UnknownSuppliedNamesIgnored(t *testing.T) {
	specs := []model.ArgumentSpec{
		{Name: "known", ArgType: model.ArgTypeString},
	}

	bound, err := Bind(specs, map[string]string{"known": "yes", "mystery": "whatever"})
	require.NoError(t, err)

	_, ok := bound.Lookup("mystery")
	assert.False(t, ok)
}

func TestBind_EnumMembership(t *testing.T) {
	specs := []model.ArgumentSpec{
		{Name: "level", ArgType: model.ArgTypeEnum, Options: []string{"low", "high"}, DefaultValue: "low"},
	}

	bound, err := Bind(specs, map[string]string{"level": "high"})
	require.NoError(t, err)
	level, _ := bound.Lookup("level")
	assert.Equal(t, KindEnum, level.Kind())
	assert.Equal(t, "high", level.String())

	_, err = Bind(specs, map[string]string{"level": "medium"})
	var invalid *InvalidArgumentTypeError
	require.ErrorAs(t, err, &invalid)
}

func TestBind_IntegerRejectsNonBase10(t *testing.T) {
	specs := []model.ArgumentSpec{
		{Name: "port", ArgType: model.ArgTypeInteger},
	}

	_, err := Bind(specs, map[string]string{"port": "0x1f"})
	var invalid *InvalidArgumentTypeError
	require.ErrorAs(t, err, &invalid)
}

func TestValue_Truthiness(t *testing.T) {
	tests := []struct {
		name   string
		value  Value
		truthy bool
	}{
		{"bool true", boolValue(true), true},
		{"bool false", boolValue(false), false},
		{"empty string", stringValue(""), false},
		{"literal false string", stringValue("false"), false},
		{"non-empty string", stringValue("yes"), true},
		{"zero int", intValue(0), false},
		{"negative int", intValue(-1), true},
		{"positive int", intValue(7), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.truthy, tt.value.Truthy())
		})
	}
}
