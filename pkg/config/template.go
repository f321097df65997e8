package config

// Template is the starter configuration written by `gohighlight init`.
const Template = `# gohighlight configuration.
#
# Query sets are applied in order; each set owns a contiguous range of
# highlight ids and a rotating group class highlight-id_<n>.

max_highlight: 4
use_query_as_class: false
normalise: true

sets:
  - name: example
    queries:
      - text: "needle"
      - regexp: "[0-9]{4}"
  # - name: pinned
  #   reserve: 10
  #   queries:
  #     - xpath:
  #         start: { xpath: "/p[1]/text()", offset: 0 }
  #         end: { xpath: "/p[1]/text()", offset: 11 }
`
