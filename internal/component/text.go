package component

// Текстовые представления для JSON (снимки для наблюдателей).

func (t DieType) MarshalText() ([]byte, error)     { return []byte(t.String()), nil }
func (p Phase) MarshalText() ([]byte, error)       { return []byte(p.String()), nil }
func (m TargetMode) MarshalText() ([]byte, error)  { return []byte(m.String()), nil }
func (p WavePhase) MarshalText() ([]byte, error)   { return []byte(p.String()), nil }
func (k UpgradeKind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }
