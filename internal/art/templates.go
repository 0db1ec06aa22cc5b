package art

// Fixed five-line glyphs, plain ASCII. Keyed by category; Unknown is the
// fallback and must always be present.
var templates = map[Category]string{
	Clear: `    \   /
     .-.
  --(   )--
     '-'
    /   \`,
	Clouds: `
     .--.
  .-(    ).
 (___.__)__)
`,
	Rain: `     .-.
    (   ).
   (___(__)
    ' ' ' '
   ' ' ' '`,
	Thunderstorm: `     .-.
    (   ).
   (___(__)
    ,/  ,/
   /  ,/  '`,
	Snow: `     .-.
    (   ).
   (___(__)
    * * * *
   * * * *`,
	Mist: `
 _ - _ - _ -
  _ - _ - _
 _ - _ - _ -
`,
	Unknown: `     .-.
    ( ? )
     '-'
      ?
`,
}
