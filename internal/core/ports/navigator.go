package ports

// Navigator abstracts client-side navigation side effects (logout redirect,
// auth-guard redirects). The UI shell supplies the real implementation.
type Navigator interface {
	NavigateTo(path string)
}

// NavigatorFunc adapts a function to the Navigator interface.
type NavigatorFunc func(path string)

func (f NavigatorFunc) NavigateTo(path string) { f(path) }
