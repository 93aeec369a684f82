/*
 * prepplot.go, part of fragprep.
 *
 * Copyright 2026 Raul Mera <rmeraa{at}academicos(dot)uta(dot)cl>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

//Package prepplot draws quick-look quality-control plots for a
//dataset about to be prepared: the distribution of a score column,
//say, to spot a broken docking run before the file goes out.
package prepplot

import (
	"fmt"
	"math"
	"strconv"

	"github.com/rmera/fragprep/dframe"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

//columnValues coerces the named column to floats, dropping whatever
//does not look like a number.
func columnValues(df *dframe.DataFrame, col string) (plotter.Values, error) {
	cells, err := df.Col(col)
	if err != nil {
		return nil, err
	}
	vals := make(plotter.Values, 0, len(cells))
	for _, c := range cells {
		var f float64
		switch n := c.(type) {
		case float64:
			f = n
		case float32:
			f = float64(n)
		case int:
			f = float64(n)
		case string:
			var err error
			f, err = strconv.ParseFloat(n, 64)
			if err != nil {
				continue
			}
		default:
			continue
		}
		if math.IsNaN(f) || math.IsInf(f, 0) {
			continue
		}
		vals = append(vals, f)
	}
	if len(vals) == 0 {
		return nil, fmt.Errorf("prepplot: column %s holds no numeric values", col)
	}
	return vals, nil
}

//ColumnHist plots a histogram of the numeric values in the named
//column of df and saves it as plotname.png. bins<=0 picks a default.
func ColumnHist(df *dframe.DataFrame, col, title, plotname string, bins int) error {
	vals, err := columnValues(df, col)
	if err != nil {
		return err
	}
	if bins <= 0 {
		bins = 16
	}
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = col
	p.Y.Label.Text = "count"
	h, err := plotter.NewHist(vals, bins)
	if err != nil {
		return err
	}
	p.Add(h)
	filename := fmt.Sprintf("%s.png", plotname)
	if err := p.Save(5*vg.Inch, 5*vg.Inch, filename); err != nil {
		return err
	}
	return nil
}
