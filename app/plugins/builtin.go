package plugins

import (
	"github.com/kilianp07/genfactory/core/factory"
	"github.com/kilianp07/genfactory/core/model"
	"github.com/kilianp07/genfactory/infra/logger"
	inframetrics "github.com/kilianp07/genfactory/infra/metrics"
)

type animalConf struct {
	Name string `json:"name"`
}

func init() {
	Animals.MustRegister("dog", func(conf map[string]any) (factory.Creator[model.Animal], error) {
		var c animalConf
		if err := factory.Decode(conf, &c); err != nil {
			return nil, err
		}
		if c.Name == "" {
			return factory.Construct[model.Animal, model.Dog](), nil
		}
		return factory.Func(func() model.Animal { return model.NewDog(c.Name) }), nil
	})
	Animals.MustRegister("cat", func(conf map[string]any) (factory.Creator[model.Animal], error) {
		var c animalConf
		if err := factory.Decode(conf, &c); err != nil {
			return nil, err
		}
		if c.Name == "" {
			return factory.Construct[model.Animal, model.Cat](), nil
		}
		return factory.Func(func() model.Animal { return model.NewCat(c.Name) }), nil
	})

	Observers.MustRegister("log", func(map[string]any) (factory.Observer, error) {
		return logger.NewObserver(logger.New("factory")), nil
	})
	Observers.MustRegister("prometheus", func(map[string]any) (factory.Observer, error) {
		o, err := inframetrics.NewPromObserver()
		if err != nil {
			return nil, err
		}
		return o, nil
	})
}
