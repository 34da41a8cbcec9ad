package levers

// registry holds the fixed perturbation set in evaluation order.
var registry = []Lever{
	&cashLever{},
	&priceLever{},
	&timelineLever{},
	&appreciationLever{},
	&yieldLever{},
}

func All() []Lever {
	return registry
}
