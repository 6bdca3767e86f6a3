package serve

import "github.com/goliatone/go-htmlgen/pkg/template"

var layoutView = template.MustCompile(`
html {
    lang = "en"
    head {
        meta { charset = "utf-8" }
        title { title " · htmlgen preview" }
        script { src = htmx }
    }
    body {
        header { a { href = "/", "htmlgen" } " / " title }
        main { id = "preview", content }
    }
}`, template.WithName("layout"))

var indexView = template.MustCompile(`
section {
    if len(entries) == 0 {
        p { "No components found in " dir }
    } else {
        ul {
            for _, e := range entries {
                li {
                    a { href = e.URL(), hx_get = e.URL(), hx_target = "#output", e.Name }
                    " (" e.File ")"
                    if e.Err != nil { span { class = "error", " " e.Err.Error() } }
                }
            }
        }
    }
    button { hx_post = "/refresh", hx_target = "#preview", "Reload" }
}
form {
    hx_post = "/render", hx_target = "#output"
    textarea { name = "src", rows = 6, cols = 60 }
    button { type = "submit", "Render" }
}
div { id = "output" }`, template.WithName("index"))

var errorView = template.MustCompile(`
div {
    class = "error", role = "alert"
    strong { status }
    pre { message }
}`, template.WithName("error"))
